package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"katiba/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, created_by, client_name, event_date, location, details, deposit, required_specialties, status, created_at`

type orderRow struct {
	ID                  int64          `db:"id"`
	CreatedBy           int64          `db:"created_by"`
	ClientName          string         `db:"client_name"`
	EventDate           time.Time      `db:"event_date"`
	Location            string         `db:"location"`
	Details             string         `db:"details"`
	Deposit             int64          `db:"deposit"`
	RequiredSpecialties pq.StringArray `db:"required_specialties"`
	Status              string         `db:"status"`
	CreatedAt           time.Time      `db:"created_at"`
}

func (r orderRow) toDomain() (domain.Order, error) {
	specs, err := domain.ParseSpecialties(r.RequiredSpecialties)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %d: %w", r.ID, err)
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %d: %w", r.ID, err)
	}

	return domain.Order{
		ID:                  r.ID,
		ClientName:          r.ClientName,
		EventDate:           domain.DateOf(r.EventDate, time.UTC),
		Location:            r.Location,
		Details:             r.Details,
		Deposit:             r.Deposit,
		RequiredSpecialties: specs,
		Status:              status,
		CreatedBy:           r.CreatedBy,
		CreatedAt:           r.CreatedAt,
	}, nil
}

// CreateOrder inserts the order and returns its id
func (r *OrderRepo) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	if order.Deposit < 0 {
		return 0, fmt.Errorf("negative deposit %d", order.Deposit)
	}
	if len(order.RequiredSpecialties) == 0 {
		return 0, errors.New("order without required specialties")
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO orders (created_by, client_name, event_date, location, details, deposit, required_specialties, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		order.CreatedBy,
		order.ClientName,
		order.EventDate.String(),
		order.Location,
		order.Details,
		order.Deposit,
		pq.Array(domain.SpecialtyStrings(order.RequiredSpecialties)),
		order.Status.Label(),
		createdAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetOrder returns the order or nil if it does not exist
func (r *OrderRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var row orderRow
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns orders matching the query
func (r *OrderRepo) ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// buildListQuery renders q with '?' placeholders; callers rebind for the driver
func buildListQuery(q domain.OrderQuery) (string, []interface{}, error) {
	var (
		where []string
		args  []interface{}
	)

	if q.From != nil {
		where = append(where, "event_date >= ?")
		args = append(args, q.From.String())
	}
	if len(q.ExcludeStatuses) > 0 {
		labels := make([]string, len(q.ExcludeStatuses))
		for i, s := range q.ExcludeStatuses {
			labels[i] = s.Label()
		}
		where = append(where, "status NOT IN (?)")
		args = append(args, labels)
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	switch q.Sort {
	case domain.SortEventDate:
		query += " ORDER BY event_date ASC, id ASC"
	default:
		query += " ORDER BY id DESC"
	}

	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	// expands the status list into one placeholder per label
	return sqlx.In(query, args...)
}
