package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

type RitasiService struct {
	scopes   ScopeResolver
	ritasi   RitasiStore
	vehicles VehicleStore
	now      func() time.Time
}

func NewRitasiService(scopes ScopeResolver, ritasi RitasiStore, vehicles VehicleStore) *RitasiService {
	return &RitasiService{scopes: scopes, ritasi: ritasi, vehicles: vehicles, now: time.Now}
}

type ListRitasiOptions struct {
	VehicleID string
	DateFrom  string
	DateTo    string
	Limit     int
	Offset    int
}

func (s *RitasiService) List(ctx context.Context, principal model.Principal, opts ListRitasiOptions) ([]model.RitasiLog, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	filter := repository.RitasiFilter{
		Scope:     scope,
		VehicleID: opts.VehicleID,
		DateFrom:  opts.DateFrom,
		DateTo:    opts.DateTo,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}
	return s.ritasi.List(ctx, filter)
}

type CreateRitasiInput struct {
	VehicleHullNumber string
	Destination       string
}

// Create opens a new trip cycle, stamping the plant-departure leg.
func (s *RitasiService) Create(ctx context.Context, principal model.Principal, input CreateRitasiInput) (*model.RitasiLog, error) {
	if !principal.IsOperatorClass() {
		return nil, ErrPermissionDenied
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByHullNumber(ctx, input.VehicleHullNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.AllowsVehicle(*vehicle) {
		return nil, ErrPermissionDenied
	}

	now := s.now()
	log := &model.RitasiLog{
		VehicleHullNumber: vehicle.HullNumber,
		OperatorID:        principal.UserID,
		OperatorName:      principal.Name,
		Location:          vehicle.Location,
		Destination:       input.Destination,
		LogDate:           model.DateKey(now),
		DepartPlantAt:     now,
	}
	if err := s.ritasi.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// StampLeg records the next timestamp of a trip cycle. Legs are strictly
// ordered and each is stamped once.
func (s *RitasiService) StampLeg(ctx context.Context, principal model.Principal, logID uuid.UUID, leg model.RitasiLeg) (*model.RitasiLog, error) {
	log, err := s.ritasi.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if log.OperatorID != principal.UserID && !principal.CanManage() {
		return nil, ErrPermissionDenied
	}

	now := s.now()
	switch leg {
	case model.RitasiArriveSite:
		if log.ArriveSiteAt != nil {
			return nil, ErrInvalidStatus
		}
		log.ArriveSiteAt = &now
	case model.RitasiDepartSite:
		if log.ArriveSiteAt == nil || log.DepartSiteAt != nil {
			return nil, ErrInvalidStatus
		}
		log.DepartSiteAt = &now
	case model.RitasiArrivePlant:
		if log.DepartSiteAt == nil || log.ArrivePlantAt != nil {
			return nil, ErrInvalidStatus
		}
		log.ArrivePlantAt = &now
	default:
		return nil, fmt.Errorf("%w: unknown leg %q", ErrInvalidInput, leg)
	}

	if err := s.ritasi.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *RitasiService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
