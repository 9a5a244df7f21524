package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Provider) error
	GetByID(ctx context.Context, id string) (*Provider, error)
	GetByUserID(ctx context.Context, userID string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	Update(ctx context.Context, p *Provider) error

	// GetSettings returns the provider's availability settings.
	// found is false when no settings row exists; err is reserved for real
	// query failures, which are never silently defaulted.
	GetSettings(ctx context.Context, providerID string) (settings AvailabilitySettings, found bool, err error)
	UpsertSettings(ctx context.Context, s AvailabilitySettings) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Provider) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.providers").
		Columns("user_id", "display_name", "bio", "city").
		Values(p.UserID, p.DisplayName, p.Bio, p.City).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create provider query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrProfileExists
		}
		return fmt.Errorf("create provider failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByUserID(ctx context.Context, userID string) (*Provider, error) {
	return r.getBy(ctx, squirrel.Eq{"user_id": userID})
}

func (r *pgxRepository) getBy(ctx context.Context, cond squirrel.Eq) (*Provider, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "user_id", "display_name", "bio", "city", "rating", "created_at", "updated_at",
	).
		From("public.providers").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get provider query failed: %w", err)
	}

	var p Provider
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.City, &p.Rating, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "user_id", "display_name", "bio", "city", "rating", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.providers")

	if filter.City != "" {
		query = query.Where(squirrel.Eq{"city": filter.City})
	}
	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"display_name": "%" + filter.Keyword + "%"})
	}

	query = query.OrderBy("rating DESC, created_at DESC")

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
		return nil, 0, fmt.Errorf("build list providers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers failed: %w", err)
	}
	defer rows.Close()

	var providers []*Provider
	var total int

	for rows.Next() {
		var p Provider
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.City, &p.Rating,
			&p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan provider failed: %w", err)
		}
		providers = append(providers, &p)
	}

	return providers, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Provider) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.providers").
		Set("display_name", p.DisplayName).
		Set("bio", p.Bio).
		Set("city", p.City).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update provider query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update provider failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) GetSettings(ctx context.Context, providerID string) (AvailabilitySettings, bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"provider_id", "min_advance_booking_hours", "max_advance_booking_days",
		"buffer_minutes", "prayer_breaks_enabled", "prayer_flexibility_minutes",
	).
		From("public.availability_settings").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return AvailabilitySettings{}, false, fmt.Errorf("build get settings query failed: %w", err)
	}

	var s AvailabilitySettings
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ProviderID, &s.MinAdvanceBookingHours, &s.MaxAdvanceBookingDays,
		&s.BufferMinutes, &s.PrayerBreaksEnabled, &s.PrayerFlexibilityMinutes,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AvailabilitySettings{}, false, nil
		}
		return AvailabilitySettings{}, false, fmt.Errorf("get settings failed: %w", err)
	}
	return s, true, nil
}

func (r *pgxRepository) UpsertSettings(ctx context.Context, s AvailabilitySettings) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.availability_settings").
		Columns(
			"provider_id", "min_advance_booking_hours", "max_advance_booking_days",
			"buffer_minutes", "prayer_breaks_enabled", "prayer_flexibility_minutes",
		).
		Values(
			s.ProviderID, s.MinAdvanceBookingHours, s.MaxAdvanceBookingDays,
			s.BufferMinutes, s.PrayerBreaksEnabled, s.PrayerFlexibilityMinutes,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			min_advance_booking_hours = EXCLUDED.min_advance_booking_hours,
			max_advance_booking_days = EXCLUDED.max_advance_booking_days,
			buffer_minutes = EXCLUDED.buffer_minutes,
			prayer_breaks_enabled = EXCLUDED.prayer_breaks_enabled,
			prayer_flexibility_minutes = EXCLUDED.prayer_flexibility_minutes`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert settings query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert settings failed: %w", err)
	}
	return nil
}
