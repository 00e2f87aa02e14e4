package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/policy"
	"checklist-service/internal/repository"
)

type ReportService struct {
	scopes   ScopeResolver
	reports  ReportStore
	vehicles VehicleStore
	users    UserStore
	feedback FeedbackStore
	now      func() time.Time
}

func NewReportService(
	scopes ScopeResolver,
	reports ReportStore,
	vehicles VehicleStore,
	users UserStore,
	feedback FeedbackStore,
) *ReportService {
	return &ReportService{
		scopes:   scopes,
		reports:  reports,
		vehicles: vehicles,
		users:    users,
		feedback: feedback,
		now:      time.Now,
	}
}

type ListReportsOptions struct {
	VehicleID string
	Location  string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

func (s *ReportService) List(ctx context.Context, principal model.Principal, opts ListReportsOptions) ([]model.Report, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	filter := repository.ReportFilter{
		Scope:     scope,
		VehicleID: opts.VehicleID,
		Location:  opts.Location,
		DateFrom:  opts.DateFrom,
		DateTo:    opts.DateTo,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}
	return s.reports.List(ctx, filter)
}

func (s *ReportService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Report, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

type CreateReportInput struct {
	VehicleID     string
	Items         []model.ReportItem
	KerusakanLain *model.DamageNote
}

// Create submits today's checklist for a vehicle. At most one report per
// vehicle per calendar day; a duplicate is a business-rule conflict. Reports
// are immutable once stored.
func (s *ReportService) Create(ctx context.Context, principal model.Principal, input CreateReportInput) (*model.Report, error) {
	if !principal.IsOperatorClass() && !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: checklist items are required", ErrInvalidInput)
	}
	for _, item := range input.Items {
		switch item.Status {
		case model.ItemStatusBaik, model.ItemStatusRusak, model.ItemStatusPerluPerhatian:
		default:
			return nil, fmt.Errorf("%w: unknown item status %q", ErrInvalidInput, item.Status)
		}
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByHullNumber(ctx, input.VehicleID)
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
	today := model.DateKey(now)

	exists, err := s.reports.ExistsForDate(ctx, vehicle.HullNumber, today)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: report already submitted for this vehicle today", ErrConflict)
	}

	report := &model.Report{
		VehicleID:     vehicle.HullNumber,
		OperatorName:  principal.Name,
		Location:      vehicle.Location,
		ReportDate:    today,
		Items:         input.Items,
		KerusakanLain: input.KerusakanLain,
		OverallStatus: policy.OverallStatus(input.Items, input.KerusakanLain),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, conflictOnDuplicate(err, "report already submitted for this vehicle today")
	}

	if policy.NeedsRepair(report.OverallStatus) {
		if err := s.notifyMechanics(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (s *ReportService) notifyMechanics(ctx context.Context, report *model.Report) error {
	mechanics, err := s.users.ListByRoleAndLocation(ctx, model.RoleMekanik, report.Location)
	if err != nil {
		return err
	}
	notifications := make([]model.Notification, 0, len(mechanics))
	for _, mechanic := range mechanics {
		notifications = append(notifications, model.Notification{
			UserID:  mechanic.ID,
			Title:   "Kendaraan bermasalah",
			Message: fmt.Sprintf("%s (%s): %s", report.VehicleID, report.ReportDate, report.OverallStatus),
		})
	}
	return s.feedback.CreateNotifications(ctx, notifications)
}

// VehicleStatuses derives today's condition for every vehicle in scope.
func (s *ReportService) VehicleStatuses(ctx context.Context, principal model.Principal, location string) ([]model.VehicleStatusRecord, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicles.List(ctx, repository.VehicleFilter{Scope: scope, Location: location})
	if err != nil {
		return nil, err
	}

	now := s.now()
	records := make([]model.VehicleStatusRecord, 0, len(vehicles))
	for _, vehicle := range vehicles {
		history, err := s.reports.ListByVehicle(ctx, vehicle.HullNumber)
		if err != nil {
			return nil, err
		}
		record := model.VehicleStatusRecord{
			Vehicle: vehicle,
			Status:  policy.DeriveVehicleStatus(history, now),
		}
		if latest := policy.LatestReport(history); latest != nil {
			record.LastReport = &model.ReportBrief{
				ID:            latest.ID,
				ReportDate:    latest.ReportDate,
				OverallStatus: latest.OverallStatus,
				OperatorName:  latest.OperatorName,
				CreatedAt:     latest.CreatedAt,
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// VehicleStatus derives today's condition for a single vehicle in scope.
func (s *ReportService) VehicleStatus(ctx context.Context, principal model.Principal, hullNumber string) (*model.VehicleStatusRecord, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByHullNumber(ctx, hullNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.AllowsVehicle(*vehicle) {
		return nil, ErrPermissionDenied
	}

	history, err := s.reports.ListByVehicle(ctx, vehicle.HullNumber)
	if err != nil {
		return nil, err
	}

	record := &model.VehicleStatusRecord{
		Vehicle: *vehicle,
		Status:  policy.DeriveVehicleStatus(history, s.now()),
	}
	if latest := policy.LatestReport(history); latest != nil {
		record.LastReport = &model.ReportBrief{
			ID:            latest.ID,
			ReportDate:    latest.ReportDate,
			OverallStatus: latest.OverallStatus,
			OperatorName:  latest.OperatorName,
			CreatedAt:     latest.CreatedAt,
		}
	}
	return record, nil
}

func (s *ReportService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
