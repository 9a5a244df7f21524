package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

type Repository interface {
	// Create inserts the booking. The bookings table carries an exclusion
	// constraint over (provider_id, date, time range) for non-cancelled rows,
	// so a concurrent insert into the same slot surfaces as ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForDay returns the provider's calendar-occupying bookings
	// (pending and confirmed) for the date, ordered by start time.
	ListForDay(ctx context.Context, providerID string, date time.Time) ([]Booking, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, provider_id, customer_id, service_id, date, start_time, end_time, status, notes, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("provider_id", "customer_id", "service_id", "date", "start_time", "end_time", "status", "notes").
		Values(
			b.ProviderID, b.CustomerID, b.ServiceID, b.Date.Format("2006-01-02"),
			b.StartTime.String(), b.EndTime.String(), b.Status, b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.ExclusionViolation || pgErr.Code == pgerrcode.UniqueViolation) {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings")

	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"provider_id": filter.ProviderID})
	}
	if filter.CustomerID != "" {
		query = query.Where(squirrel.Eq{"customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	query = query.OrderBy("date DESC, start_time DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var (
			b          Booking
			start, end string
		)
		if err := rows.Scan(
			&b.ID, &b.ProviderID, &b.CustomerID, &b.ServiceID, &b.Date,
			&start, &end, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		if b.StartTime, err = clock.Parse(start); err != nil {
			return nil, 0, fmt.Errorf("booking %s has malformed start time: %w", b.ID, err)
		}
		if b.EndTime, err = clock.Parse(end); err != nil {
			return nil, 0, fmt.Errorf("booking %s has malformed end time: %w", b.ID, err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForDay(ctx context.Context, providerID string, date time.Time) ([]Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{
			"provider_id": providerID,
			"date":        date.Format("2006-01-02"),
			"status":      []Status{StatusPending, StatusConfirmed},
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build day bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var (
			b          Booking
			start, end string
		)
		if err := rows.Scan(
			&b.ID, &b.ProviderID, &b.CustomerID, &b.ServiceID, &b.Date,
			&start, &end, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		if b.StartTime, err = clock.Parse(start); err != nil {
			return nil, fmt.Errorf("booking %s has malformed start time: %w", b.ID, err)
		}
		if b.EndTime, err = clock.Parse(end); err != nil {
			return nil, fmt.Errorf("booking %s has malformed end time: %w", b.ID, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var (
		b          Booking
		start, end string
	)
	if err := row.Scan(
		&b.ID, &b.ProviderID, &b.CustomerID, &b.ServiceID, &b.Date,
		&start, &end, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if b.StartTime, err = clock.Parse(start); err != nil {
		return nil, fmt.Errorf("booking %s has malformed start time: %w", b.ID, err)
	}
	if b.EndTime, err = clock.Parse(end); err != nil {
		return nil, fmt.Errorf("booking %s has malformed end time: %w", b.ID, err)
	}
	return &b, nil
}
