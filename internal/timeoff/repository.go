package timeoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	// ListForDate returns blocking entries whose date range covers the date.
	ListForDate(ctx context.Context, providerID string, date time.Time) ([]Entry, error)
	ListByProvider(ctx context.Context, providerID string) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Entry) error {
	var start, end *string
	if e.StartTime != nil {
		s := e.StartTime.String()
		start = &s
	}
	if e.EndTime != nil {
		s := e.EndTime.String()
		end = &s
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.time_off").
		Columns("provider_id", "start_date", "end_date", "start_time", "end_time", "blocks_bookings", "reason").
		Values(e.ProviderID, e.StartDate, e.EndDate, start, end, e.BlocksBookings, e.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create time off query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("create time off failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	entries, err := r.list(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

func (r *pgxRepository) ListForDate(ctx context.Context, providerID string, date time.Time) ([]Entry, error) {
	day := date.Format("2006-01-02")
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"provider_id": providerID, "blocks_bookings": true},
		squirrel.LtOrEq{"start_date": day},
		squirrel.GtOrEq{"end_date": day},
	})
}

func (r *pgxRepository) ListByProvider(ctx context.Context, providerID string) ([]Entry, error) {
	return r.list(ctx, squirrel.Eq{"provider_id": providerID})
}

func (r *pgxRepository) list(ctx context.Context, cond squirrel.Sqlizer) ([]Entry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "start_date", "end_date", "start_time", "end_time",
		"blocks_bookings", "reason", "created_at",
	).
		From("public.time_off").
		Where(cond).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time off query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("list time off failed: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			start, end *string
		)
		if err := rows.Scan(
			&e.ID, &e.ProviderID, &e.StartDate, &e.EndDate, &start, &end,
			&e.BlocksBookings, &e.Reason, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time off failed: %w", err)
		}
		if start != nil {
			t, err := clock.Parse(*start)
			if err != nil {
				return nil, fmt.Errorf("time off %s has malformed start time: %w", e.ID, err)
			}
			e.StartTime = &t
		}
		if end != nil {
			t, err := clock.Parse(*end)
			if err != nil {
				return nil, fmt.Errorf("time off %s has malformed end time: %w", e.ID, err)
			}
			e.EndTime = &t
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.time_off").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete time off query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete time off failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
