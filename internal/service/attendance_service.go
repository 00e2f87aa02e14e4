package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"checklist-service/internal/model"
	"checklist-service/internal/policy"
	"checklist-service/internal/repository"
)

type AttendanceService struct {
	scopes      ScopeResolver
	attendances AttendanceStore
	now         func() time.Time
}

func NewAttendanceService(scopes ScopeResolver, attendances AttendanceStore) *AttendanceService {
	return &AttendanceService{scopes: scopes, attendances: attendances, now: time.Now}
}

type ListAttendanceOptions struct {
	UserID   *uuid.UUID
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (s *AttendanceService) List(ctx context.Context, principal model.Principal, opts ListAttendanceOptions) ([]model.Attendance, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	filter := repository.AttendanceFilter{
		Scope:    scope,
		UserID:   opts.UserID,
		DateFrom: opts.DateFrom,
		DateTo:   opts.DateTo,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}
	return s.attendances.List(ctx, filter)
}

// Today returns the caller's own attendance pair for the current day.
func (s *AttendanceService) Today(ctx context.Context, principal model.Principal) (*model.AttendanceDay, error) {
	today := model.DateKey(s.now())

	masuk, err := s.attendances.GetForDay(ctx, principal.UserID, model.AttendanceMasuk, today)
	if err != nil {
		return nil, err
	}
	pulang, err := s.attendances.GetForDay(ctx, principal.UserID, model.AttendancePulang, today)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceDay{Masuk: masuk, Pulang: pulang}, nil
}

// ClockIn records a masuk for the caller. The window is re-checked at submit
// time so a stale client state cannot bypass the 16:00 close, and at most one
// clock-in per calendar day is accepted.
func (s *AttendanceService) ClockIn(ctx context.Context, principal model.Principal, photo string) (*model.Attendance, error) {
	now := s.now()

	if decision := policy.ClockInWindow(now); !decision.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, decision.Reason)
	}

	today := model.DateKey(now)
	existing, err := s.attendances.GetForDay(ctx, principal.UserID, model.AttendanceMasuk, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: clock-in already recorded for today", ErrConflict)
	}

	attendance := &model.Attendance{
		UserID:         principal.UserID,
		UserName:       principal.Name,
		Type:           model.AttendanceMasuk,
		Status:         policy.ClockInStatus(now),
		Location:       principal.Location,
		Photo:          photo,
		AttendanceDate: today,
	}
	if err := s.attendances.Create(ctx, attendance); err != nil {
		return nil, conflictOnDuplicate(err, "clock-in already recorded for today")
	}
	return attendance, nil
}

// ClockOut records a pulang. It requires a clock-in on the same calendar day
// and honors the evening/overnight window.
func (s *AttendanceService) ClockOut(ctx context.Context, principal model.Principal, photo string) (*model.Attendance, error) {
	now := s.now()

	if decision := policy.ClockOutWindow(now); !decision.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, decision.Reason)
	}

	today := model.DateKey(now)

	masuk, err := s.attendances.GetForDay(ctx, principal.UserID, model.AttendanceMasuk, today)
	if err != nil {
		return nil, err
	}
	if masuk == nil {
		return nil, fmt.Errorf("%w: no clock-in recorded for today", ErrInvalidInput)
	}

	existing, err := s.attendances.GetForDay(ctx, principal.UserID, model.AttendancePulang, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: clock-out already recorded for today", ErrConflict)
	}

	attendance := &model.Attendance{
		UserID:         principal.UserID,
		UserName:       principal.Name,
		Type:           model.AttendancePulang,
		Location:       principal.Location,
		Photo:          photo,
		AttendanceDate: today,
	}
	if err := s.attendances.Create(ctx, attendance); err != nil {
		return nil, conflictOnDuplicate(err, "clock-out already recorded for today")
	}
	return attendance, nil
}

func (s *AttendanceService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
