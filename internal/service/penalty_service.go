package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

type PenaltyService struct {
	scopes    ScopeResolver
	penalties PenaltyStore
	users     UserStore
}

func NewPenaltyService(scopes ScopeResolver, penalties PenaltyStore, users UserStore) *PenaltyService {
	return &PenaltyService{scopes: scopes, penalties: penalties, users: users}
}

type ListPenaltiesOptions struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

func (s *PenaltyService) List(ctx context.Context, principal model.Principal, opts ListPenaltiesOptions) ([]model.Penalty, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	filter := repository.PenaltyFilter{
		Scope:  scope,
		UserID: opts.UserID,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	return s.penalties.List(ctx, filter)
}

type CreatePenaltyInput struct {
	UserID            uuid.UUID
	VehicleHullNumber string
	Points            int
	Reason            string
}

func (s *PenaltyService) Create(ctx context.Context, principal model.Principal, input CreatePenaltyInput) (*model.Penalty, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if input.Points < 1 || input.Points > 10 {
		return nil, fmt.Errorf("%w: points must be between 1 and 10", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.AllowsLocation(user.Location) {
		return nil, ErrPermissionDenied
	}

	penalty := &model.Penalty{
		UserID:            user.ID,
		UserName:          user.Name,
		UserNik:           user.Nik,
		VehicleHullNumber: input.VehicleHullNumber,
		Points:            input.Points,
		Reason:            input.Reason,
		GivenBy:           principal.Username,
	}
	if err := s.penalties.Create(ctx, penalty); err != nil {
		return nil, err
	}
	return penalty, nil
}

// Summary totals the append-only ledger for one user. Operators may only read
// their own.
func (s *PenaltyService) Summary(ctx context.Context, principal model.Principal, userID uuid.UUID) (*model.PenaltySummary, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		if !scope.AllowsLocation(user.Location) {
			return nil, ErrPermissionDenied
		}
	case model.ScopeOperator:
		if scope.UserID != userID {
			return nil, ErrPermissionDenied
		}
	default:
		return nil, ErrPermissionDenied
	}

	total, entries, err := s.penalties.SumPointsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.PenaltySummary{
		UserID:      user.ID,
		UserName:    user.Name,
		TotalPoints: total,
		Entries:     entries,
	}, nil
}

func (s *PenaltyService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
