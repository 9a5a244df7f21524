package schedule

import (
	"context"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type CreateScheduleRequest struct {
	ProviderID     string
	Name           string
	EffectiveFrom  time.Time
	EffectiveUntil *time.Time
	Priority       int
}

type CreateShiftRequest struct {
	ScheduleID string
	Weekday    time.Weekday
	StartTime  clock.TimeOfDay
	EndTime    clock.TimeOfDay
	ShiftType  ShiftType
}

type CreateBreakRequest struct {
	ScheduleID string
	Weekday    time.Weekday
	Name       string
	BreakType  string
	StartTime  clock.TimeOfDay
	EndTime    clock.TimeOfDay
}

type Service interface {
	CreateSchedule(ctx context.Context, userID string, req CreateScheduleRequest) (*Schedule, error)
	ListSchedules(ctx context.Context, providerID string) ([]*Schedule, error)
	DeleteSchedule(ctx context.Context, id, userID string) error

	ActiveScheduleFor(ctx context.Context, providerID string, date time.Time) (*Schedule, error)
	ShiftsFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]WorkingShift, error)
	FixedBreaksFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]FixedBreak, error)

	AddShift(ctx context.Context, userID string, req CreateShiftRequest) (*WorkingShift, error)
	RemoveShift(ctx context.Context, id, scheduleID, userID string) error
	AddBreak(ctx context.Context, userID string, req CreateBreakRequest) (*FixedBreak, error)
	RemoveBreak(ctx context.Context, id, scheduleID, userID string) error
}

type service struct {
	repo        Repository
	providerSvc provider.Service
}

func NewService(repo Repository, providerSvc provider.Service) Service {
	return &service{
		repo:        repo,
		providerSvc: providerSvc,
	}
}

func (s *service) checkScheduleOwner(ctx context.Context, scheduleID, userID string) (*Schedule, error) {
	sched, err := s.repo.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	p, err := s.providerSvc.GetByID(ctx, sched.ProviderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}
	return sched, nil
}

func (s *service) CreateSchedule(ctx context.Context, userID string, req CreateScheduleRequest) (*Schedule, error) {
	p, err := s.providerSvc.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	sched := &Schedule{
		ProviderID:     req.ProviderID,
		Name:           req.Name,
		EffectiveFrom:  req.EffectiveFrom,
		EffectiveUntil: req.EffectiveUntil,
		Priority:       req.Priority,
	}
	if err := s.repo.CreateSchedule(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *service) ListSchedules(ctx context.Context, providerID string) ([]*Schedule, error) {
	return s.repo.ListSchedules(ctx, providerID)
}

func (s *service) DeleteSchedule(ctx context.Context, id, userID string) error {
	if _, err := s.checkScheduleOwner(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.DeleteSchedule(ctx, id)
}

func (s *service) ActiveScheduleFor(ctx context.Context, providerID string, date time.Time) (*Schedule, error) {
	return s.repo.ActiveForDate(ctx, providerID, date)
}

func (s *service) ShiftsFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]WorkingShift, error) {
	return s.repo.ShiftsFor(ctx, scheduleID, weekday)
}

func (s *service) FixedBreaksFor(ctx context.Context, scheduleID string, weekday time.Weekday) ([]FixedBreak, error) {
	return s.repo.BreaksFor(ctx, scheduleID, weekday)
}

func (s *service) AddShift(ctx context.Context, userID string, req CreateShiftRequest) (*WorkingShift, error) {
	if _, err := s.checkScheduleOwner(ctx, req.ScheduleID, userID); err != nil {
		return nil, err
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = ShiftRegular
	}
	if !ValidShiftType(shiftType) {
		return nil, ErrInvalidShiftType
	}

	sh := &WorkingShift{
		ScheduleID: req.ScheduleID,
		Weekday:    req.Weekday,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		ShiftType:  shiftType,
	}
	if err := s.repo.CreateShift(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *service) RemoveShift(ctx context.Context, id, scheduleID, userID string) error {
	if _, err := s.checkScheduleOwner(ctx, scheduleID, userID); err != nil {
		return err
	}
	return s.repo.DeleteShift(ctx, id)
}

func (s *service) AddBreak(ctx context.Context, userID string, req CreateBreakRequest) (*FixedBreak, error) {
	if _, err := s.checkScheduleOwner(ctx, req.ScheduleID, userID); err != nil {
		return nil, err
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	b := &FixedBreak{
		ScheduleID: req.ScheduleID,
		Weekday:    req.Weekday,
		Name:       req.Name,
		BreakType:  req.BreakType,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := s.repo.CreateBreak(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) RemoveBreak(ctx context.Context, id, scheduleID, userID string) error {
	if _, err := s.checkScheduleOwner(ctx, scheduleID, userID); err != nil {
		return err
	}
	return s.repo.DeleteBreak(ctx, id)
}
