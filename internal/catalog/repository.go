package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, int, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.services").
		Columns(
			"provider_id", "name", "description", "price_cents",
			"duration_minutes", "preparation_minutes", "cleanup_minutes", "is_active",
		).
		Values(
			s.ProviderID, s.Name, s.Description, s.PriceCents,
			s.DurationMinutes, s.PreparationMinutes, s.CleanupMinutes, true,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("create service failed: %w", err)
	}
	s.IsActive = true
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "name", "description", "price_cents",
		"duration_minutes", "preparation_minutes", "cleanup_minutes",
		"is_active", "created_at", "updated_at",
	).
		From("public.services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service query failed: %w", err)
	}

	var s Service
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ProviderID, &s.Name, &s.Description, &s.PriceCents,
		&s.DurationMinutes, &s.PreparationMinutes, &s.CleanupMinutes,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Service, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "provider_id", "name", "description", "price_cents",
		"duration_minutes", "preparation_minutes", "cleanup_minutes",
		"is_active", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.services")

	if filter.ProviderID != "" {
		query = query.Where(squirrel.Eq{"provider_id": filter.ProviderID})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	query = query.OrderBy("created_at ASC")

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
		return nil, 0, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var services []*Service
	var total int

	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID, &s.ProviderID, &s.Name, &s.Description, &s.PriceCents,
			&s.DurationMinutes, &s.PreparationMinutes, &s.CleanupMinutes,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan service failed: %w", err)
		}
		services = append(services, &s)
	}

	return services, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Service) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("price_cents", s.PriceCents).
		Set("duration_minutes", s.DurationMinutes).
		Set("preparation_minutes", s.PreparationMinutes).
		Set("cleanup_minutes", s.CleanupMinutes).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
