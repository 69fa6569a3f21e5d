package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"katiba/internal/domain"
	"katiba/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// MemberRepo implements repository.MemberRepository
type MemberRepo struct {
	db *sqlx.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *sqlx.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

type memberRow struct {
	UserID      int64          `db:"user_id"`
	DisplayName string         `db:"display_name"`
	Specialties pq.StringArray `db:"specialties"`
	Registered  bool           `db:"registered"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r memberRow) toDomain() (domain.Member, error) {
	specs, err := domain.ParseSpecialties(r.Specialties)
	if err != nil {
		return domain.Member{}, fmt.Errorf("member %d: %w", r.UserID, err)
	}
	return domain.Member{
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Specialties: specs,
		Registered:  r.Registered,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// EnsureMember creates the member on first contact, leaving existing rows alone
func (r *MemberRepo) EnsureMember(ctx context.Context, userID int64, displayName string) error {
	query := `
		INSERT INTO members (user_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, displayName)
	return err
}

// RegisterMember stores the name and specialties and marks the member
// registered in a single statement, so a failure leaves the row untouched
func (r *MemberRepo) RegisterMember(ctx context.Context, userID int64, displayName string, specialties []domain.Specialty) error {
	if len(specialties) == 0 {
		return fmt.Errorf("member %d: registered members need at least one specialty", userID)
	}

	query := `
		INSERT INTO members (user_id, display_name, specialties, registered)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			specialties = EXCLUDED.specialties,
			registered = TRUE,
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, displayName, pq.Array(domain.SpecialtyStrings(specialties)))
	return err
}

// GetMember returns the member or nil if the user was never seen
func (r *MemberRepo) GetMember(ctx context.Context, userID int64) (*domain.Member, error) {
	var row memberRow
	query := `
		SELECT user_id, display_name, specialties, registered, created_at, updated_at
		FROM members
		WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &row, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SetMemberSpecialties replaces the member's specialties and marks it registered
func (r *MemberRepo) SetMemberSpecialties(ctx context.Context, userID int64, specialties []domain.Specialty) error {
	if len(specialties) == 0 {
		return fmt.Errorf("member %d: registered members need at least one specialty", userID)
	}

	query := `
		UPDATE members
		SET specialties = $2, registered = TRUE, updated_at = NOW()
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, pq.Array(domain.SpecialtyStrings(specialties)))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("member %d: %w", userID, repository.ErrNotFound)
	}
	return nil
}

// ListRegisteredMembers returns every registered member
func (r *MemberRepo) ListRegisteredMembers(ctx context.Context) ([]domain.Member, error) {
	var rows []memberRow
	query := `
		SELECT user_id, display_name, specialties, registered, created_at, updated_at
		FROM members
		WHERE registered = TRUE
		ORDER BY user_id
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}
