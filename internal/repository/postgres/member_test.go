package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"katiba/internal/domain"
	"katiba/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberColumns = []string{"user_id", "display_name", "specialties", "registered", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestMemberRepo_EnsureMember(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	mock.ExpectExec("INSERT INTO members .* ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs(int64(123), "Mona").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.EnsureMember(context.Background(), 123, "Mona")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_RegisterMember(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	mock.ExpectExec("INSERT INTO members .* VALUES \\(\\$1, \\$2, \\$3, TRUE\\) .* DO UPDATE SET .*display_name = EXCLUDED.display_name.*specialties = EXCLUDED.specialties.*registered = TRUE").
		WithArgs(int64(123), "Mona", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RegisterMember(context.Background(), 123, "Mona", []domain.Specialty{domain.SpecialtyLaser})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_RegisterMember_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	// a single statement: nothing else runs before or after it
	mock.ExpectExec("INSERT INTO members").
		WithArgs(int64(123), "Mona", sqlmock.AnyArg()).
		WillReturnError(fmt.Errorf("db down"))

	err := repo.RegisterMember(context.Background(), 123, "Mona", []domain.Specialty{domain.SpecialtyLaser})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_RegisterMember_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	err := repo.RegisterMember(context.Background(), 123, "Mona", nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_GetMember(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		rows          *sqlmock.Rows
		queryErr      error
		expectedNil   bool
		expectedError bool
	}{
		{
			name: "registered member",
			rows: sqlmock.NewRows(memberColumns).
				AddRow(123, "Mona", `{"دي جي","ليز"}`, true, now, now),
		},
		{
			name:        "unknown member",
			queryErr:    nil,
			rows:        sqlmock.NewRows(memberColumns),
			expectedNil: true,
		},
		{
			name:          "query error",
			queryErr:      fmt.Errorf("connection reset"),
			expectedNil:   true,
			expectedError: true,
		},
		{
			name: "unknown stored specialty",
			rows: sqlmock.NewRows(memberColumns).
				AddRow(123, "Mona", `{"طبول"}`, true, now, now),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewMemberRepo(db)

			expect := mock.ExpectQuery("SELECT user_id, display_name, specialties, registered, created_at, updated_at FROM members WHERE user_id = \\$1").
				WithArgs(int64(123))
			if tt.queryErr != nil {
				expect.WillReturnError(tt.queryErr)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			member, err := repo.GetMember(context.Background(), 123)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, member)
			} else {
				require.NotNil(t, member)
				assert.Equal(t, int64(123), member.UserID)
				assert.True(t, member.Registered)
				assert.Equal(t, []domain.Specialty{domain.SpecialtyDJ, domain.SpecialtyLaser}, member.Specialties)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemberRepo_SetMemberSpecialties(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	mock.ExpectExec("UPDATE members SET specialties = \\$2, registered = TRUE").
		WithArgs(int64(123), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMemberSpecialties(context.Background(), 123, []domain.Specialty{domain.SpecialtyAll})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_SetMemberSpecialties_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	mock.ExpectExec("UPDATE members").
		WithArgs(int64(123), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetMemberSpecialties(context.Background(), 123, []domain.Specialty{domain.SpecialtyDJ})

	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_SetMemberSpecialties_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	err := repo.SetMemberSpecialties(context.Background(), 123, nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_ListRegisteredMembers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows(memberColumns).
		AddRow(1, "A", `{"دي جي"}`, true, now, now).
		AddRow(3, "C", `{"الكل"}`, true, now, now)

	mock.ExpectQuery("SELECT .* FROM members WHERE registered = TRUE").
		WillReturnRows(rows)

	members, err := repo.ListRegisteredMembers(context.Background())

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, []domain.Specialty{domain.SpecialtyDJ}, members[0].Specialties)
	assert.Equal(t, []domain.Specialty{domain.SpecialtyAll}, members[1].Specialties)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo_ListRegisteredMembers_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepo(db)

	mock.ExpectQuery("SELECT .* FROM members").WillReturnError(fmt.Errorf("query error"))

	members, err := repo.ListRegisteredMembers(context.Background())

	assert.Error(t, err)
	assert.Nil(t, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}
