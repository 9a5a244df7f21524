package schedule

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
	CreateSchedule(ctx context.Context, s *Schedule) error
	GetScheduleByID(ctx context.Context, id string) (*Schedule, error)
	ListSchedules(ctx context.Context, providerID string) ([]*Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	// ActiveForDate returns the single schedule in effect for the provider on
	// the given date: effective range covers the date, highest priority wins.
	ActiveForDate(ctx context.Context, providerID string, date time.Time) (*Schedule, error)

	CreateShift(ctx context.Context, sh *WorkingShift) error
	ShiftsFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]WorkingShift, error)
	DeleteShift(ctx context.Context, id string) error

	CreateBreak(ctx context.Context, b *FixedBreak) error
	BreaksFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]FixedBreak, error)
	DeleteBreak(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateSchedule(ctx context.Context, s *Schedule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedules").
		Columns("provider_id", "name", "effective_from", "effective_until", "priority", "is_active").
		Values(s.ProviderID, s.Name, s.EffectiveFrom, s.EffectiveUntil, s.Priority, true).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create schedule query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("create schedule failed: %w", err)
	}
	s.IsActive = true
	return nil
}

func (r *pgxRepository) GetScheduleByID(ctx context.Context, id string) (*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "name", "effective_from", "effective_until",
		"priority", "is_active", "created_at",
	).
		From("public.schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get schedule query failed: %w", err)
	}

	var s Schedule
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ProviderID, &s.Name, &s.EffectiveFrom, &s.EffectiveUntil,
		&s.Priority, &s.IsActive, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schedule failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) ListSchedules(ctx context.Context, providerID string) ([]*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "name", "effective_from", "effective_until",
		"priority", "is_active", "created_at",
	).
		From("public.schedules").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("priority DESC, created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list schedules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules failed: %w", err)
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(
			&s.ID, &s.ProviderID, &s.Name, &s.EffectiveFrom, &s.EffectiveUntil,
			&s.Priority, &s.IsActive, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan schedule failed: %w", err)
		}
		schedules = append(schedules, &s)
	}
	return schedules, nil
}

func (r *pgxRepository) DeleteSchedule(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete schedule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete schedule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ActiveForDate(ctx context.Context, providerID string, date time.Time) (*Schedule, error) {
	day := date.Format("2006-01-02")

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "provider_id", "name", "effective_from", "effective_until",
		"priority", "is_active", "created_at",
	).
		From("public.schedules").
		Where(squirrel.Eq{"provider_id": providerID, "is_active": true}).
		Where(squirrel.LtOrEq{"effective_from": day}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_until": nil},
			squirrel.GtOrEq{"effective_until": day},
		}).
		OrderBy("priority DESC, effective_from DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active schedule query failed: %w", err)
	}

	var s Schedule
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ProviderID, &s.Name, &s.EffectiveFrom, &s.EffectiveUntil,
		&s.Priority, &s.IsActive, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveSchedule
		}
		return nil, fmt.Errorf("get active schedule failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) CreateShift(ctx context.Context, sh *WorkingShift) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.working_shifts").
		Columns("schedule_id", "weekday", "start_time", "end_time", "shift_type").
		Values(sh.ScheduleID, int(sh.Weekday), sh.StartTime.String(), sh.EndTime.String(), sh.ShiftType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create shift query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sh.ID); err != nil {
		return fmt.Errorf("create shift failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ShiftsFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]WorkingShift, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "schedule_id", "weekday", "start_time", "end_time", "shift_type").
		From("public.working_shifts").
		Where(squirrel.Eq{"schedule_id": scheduleID, "weekday": int(weekday)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build shifts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts failed: %w", err)
	}
	defer rows.Close()

	var shifts []WorkingShift
	for rows.Next() {
		var (
			sh         WorkingShift
			weekdayInt int
			start, end string
		)
		if err := rows.Scan(&sh.ID, &sh.ScheduleID, &weekdayInt, &start, &end, &sh.ShiftType); err != nil {
			return nil, fmt.Errorf("scan shift failed: %w", err)
		}
		sh.Weekday = time.Weekday(weekdayInt)
		if sh.StartTime, err = clock.Parse(start); err != nil {
			return nil, fmt.Errorf("shift %s has malformed start time: %w", sh.ID, err)
		}
		if sh.EndTime, err = clock.Parse(end); err != nil {
			return nil, fmt.Errorf("shift %s has malformed end time: %w", sh.ID, err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, nil
}

func (r *pgxRepository) DeleteShift(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.working_shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete shift query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete shift failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func (r *pgxRepository) CreateBreak(ctx context.Context, b *FixedBreak) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedule_breaks").
		Columns("schedule_id", "weekday", "name", "break_type", "start_time", "end_time").
		Values(b.ScheduleID, int(b.Weekday), b.Name, b.BreakType, b.StartTime.String(), b.EndTime.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create break query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create break failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) BreaksFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]FixedBreak, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "schedule_id", "weekday", "name", "break_type", "start_time", "end_time").
		From("public.schedule_breaks").
		Where(squirrel.Eq{"schedule_id": scheduleID, "weekday": int(weekday)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build breaks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list breaks failed: %w", err)
	}
	defer rows.Close()

	var breaks []FixedBreak
	for rows.Next() {
		var (
			b          FixedBreak
			weekdayInt int
			start, end string
		)
		if err := rows.Scan(&b.ID, &b.ScheduleID, &weekdayInt, &b.Name, &b.BreakType, &start, &end); err != nil {
			return nil, fmt.Errorf("scan break failed: %w", err)
		}
		b.Weekday = time.Weekday(weekdayInt)
		if b.StartTime, err = clock.Parse(start); err != nil {
			return nil, fmt.Errorf("break %s has malformed start time: %w", b.ID, err)
		}
		if b.EndTime, err = clock.Parse(end); err != nil {
			return nil, fmt.Errorf("break %s has malformed end time: %w", b.ID, err)
		}
		breaks = append(breaks, b)
	}
	return breaks, nil
}

func (r *pgxRepository) DeleteBreak(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.schedule_breaks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete break query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete break failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrBreakNotFound
	}
	return nil
}
