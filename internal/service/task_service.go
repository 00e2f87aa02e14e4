package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/policy"
	"checklist-service/internal/repository"
)

const minDelayReasonLen = 10

type TaskService struct {
	scopes   ScopeResolver
	tasks    TaskStore
	reports  ReportStore
	vehicles VehicleStore
	now      func() time.Time
}

func NewTaskService(scopes ScopeResolver, tasks TaskStore, reports ReportStore, vehicles VehicleStore) *TaskService {
	return &TaskService{
		scopes:   scopes,
		tasks:    tasks,
		reports:  reports,
		vehicles: vehicles,
		now:      time.Now,
	}
}

type ListTasksOptions struct {
	Statuses   []model.TaskStatus
	VehicleID  string
	MechanicID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

func (s *TaskService) List(ctx context.Context, principal model.Principal, opts ListTasksOptions) ([]model.TaskRecord, error) {
	// The status column is enum-typed, so an unknown filter value has to be
	// rejected here rather than handed to the database.
	for _, status := range opts.Statuses {
		switch status {
		case model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusCompleted, model.TaskStatusDelayed:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{
		Scope:      scope,
		Statuses:   opts.Statuses,
		VehicleID:  opts.VehicleID,
		MechanicID: opts.MechanicID,
		DateFrom:   opts.DateFrom,
		DateTo:     opts.DateTo,
		Limit:      opts.Limit,
		Offset:     opts.Offset,
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	records := make([]model.TaskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, model.TaskRecord{
			Task:       task,
			Timeliness: policy.TaskTimeliness(task),
		})
	}
	return records, nil
}

type TaskDetails struct {
	Record    model.TaskRecord              `json:"record"`
	StatusLog []model.MechanicTaskStatusLog `json:"status_log"`
}

func (s *TaskService) GetDetails(ctx context.Context, principal model.Principal, taskID uuid.UUID) (*TaskDetails, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, scope, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record := model.TaskRecord{Task: *task, Timeliness: policy.TaskTimeliness(*task)}

	spareParts, err := s.tasks.GetSparePartLog(ctx, task.ID)
	if err == nil {
		record.SpareParts = spareParts
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	statusLog, err := s.tasks.ListStatusLog(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	return &TaskDetails{Record: record, StatusLog: statusLog}, nil
}

type CreateTaskInput struct {
	VehicleHullNumber string
	RepairDescription string
	TargetDate        string
	TargetTime        string
	TriggeringReport  *uuid.UUID
	Mechanics         []model.TaskMechanic
}

// Create raises a work order. The target vehicle must currently derive
// Damaged or Needs Attention from its report history.
func (s *TaskService) Create(ctx context.Context, principal model.Principal, input CreateTaskInput) (*model.MechanicTask, error) {
	if !principal.CanManage() && principal.Role != model.RoleKepalaBP {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.RepairDescription) == "" {
		return nil, fmt.Errorf("%w: repair description is required", ErrInvalidInput)
	}
	if len(input.Mechanics) == 0 {
		return nil, fmt.Errorf("%w: at least one mechanic must be assigned", ErrInvalidInput)
	}
	if _, err := policy.CompletionTarget(input.TargetDate, input.TargetTime); err != nil {
		return nil, fmt.Errorf("%w: invalid target date or time", ErrInvalidInput)
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

	history, err := s.reports.ListByVehicle(ctx, vehicle.HullNumber)
	if err != nil {
		return nil, err
	}
	if !policy.NeedsRepair(policy.DeriveVehicleStatus(history, s.now())) {
		return nil, fmt.Errorf("%w: vehicle is not flagged for repair", ErrInvalidInput)
	}

	task := &model.MechanicTask{
		VehicleHullNumber: vehicle.HullNumber,
		LicensePlate:      vehicle.LicensePlate,
		Location:          vehicle.Location,
		RepairDescription: input.RepairDescription,
		TargetDate:        input.TargetDate,
		TargetTime:        input.TargetTime,
		TriggeringReport:  input.TriggeringReport,
		Mechanics:         input.Mechanics,
		Status:            model.TaskStatusPending,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	if err := s.tasks.LogStatusChange(ctx, &model.MechanicTaskStatusLog{
		TaskID:    task.ID,
		NewStatus: model.TaskStatusPending,
		Note:      "work order created",
		ChangedBy: &principal.UserID,
	}); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateStatus drives the work-order state machine:
// PENDING → IN_PROGRESS → COMPLETED, with DELAYED reachable from any
// non-terminal state and able to resume anywhere. COMPLETED is terminal.
func (s *TaskService) UpdateStatus(ctx context.Context, principal model.Principal, taskID uuid.UUID, target model.TaskStatus, reason string) error {
	if !principal.IsMekanik() && !principal.CanManage() {
		return ErrPermissionDenied
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return err
	}

	task, err := s.tasks.GetByID(ctx, scope, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !transitionAllowed(task.Status, target) {
		return ErrInvalidStatus
	}

	if target == model.TaskStatusDelayed && len(strings.TrimSpace(reason)) < minDelayReasonLen {
		return fmt.Errorf("%w: delay reason must be at least %d characters", ErrInvalidInput, minDelayReasonLen)
	}

	now := s.now()
	prev := task.Status
	task.Status = target

	switch target {
	case model.TaskStatusInProgress:
		if task.StartedAt == nil {
			task.StartedAt = &now
		}
		task.DelayReason = ""
	case model.TaskStatusCompleted:
		task.CompletedAt = &now
	case model.TaskStatusDelayed:
		task.DelayReason = strings.TrimSpace(reason)
	case model.TaskStatusPending:
		task.DelayReason = ""
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}

	return s.tasks.LogStatusChange(ctx, &model.MechanicTaskStatusLog{
		TaskID:    task.ID,
		OldStatus: &prev,
		NewStatus: target,
		Note:      strings.TrimSpace(reason),
		ChangedBy: &principal.UserID,
	})
}

func transitionAllowed(from, to model.TaskStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case model.TaskStatusPending:
		return to == model.TaskStatusInProgress || to == model.TaskStatusDelayed
	case model.TaskStatusInProgress:
		return to == model.TaskStatusCompleted || to == model.TaskStatusDelayed
	case model.TaskStatusDelayed:
		return to == model.TaskStatusPending || to == model.TaskStatusInProgress || to == model.TaskStatusCompleted
	case model.TaskStatusCompleted:
		return false
	default:
		return false
	}
}

type SparePartInput struct {
	PartsUsed string
}

// LogSpareParts records parts consumed by a completed work order, once.
func (s *TaskService) LogSpareParts(ctx context.Context, principal model.Principal, taskID uuid.UUID, input SparePartInput) (*model.SparePartLog, error) {
	if !principal.IsLogistik() && !principal.IsMekanik() && !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.PartsUsed) == "" {
		return nil, fmt.Errorf("%w: parts description is required", ErrInvalidInput)
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, scope, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if task.Status != model.TaskStatusCompleted {
		return nil, fmt.Errorf("%w: spare parts can only be logged for a completed work order", ErrInvalidStatus)
	}

	exists, err := s.tasks.SparePartLogExists(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: spare parts already logged for this work order", ErrConflict)
	}

	log := &model.SparePartLog{
		TaskID:            task.ID,
		VehicleHullNumber: task.VehicleHullNumber,
		PartsUsed:         input.PartsUsed,
		LogDate:           model.DateKey(s.now()),
		LoggedByName:      principal.Name,
	}
	if err := s.tasks.CreateSparePartLog(ctx, log); err != nil {
		return nil, conflictOnDuplicate(err, "spare parts already logged for this work order")
	}
	return log, nil
}

func (s *TaskService) ListSpareParts(ctx context.Context, principal model.Principal, dateFrom, dateTo *time.Time) ([]model.SparePartLog, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListSparePartLogs(ctx, scope, dateFrom, dateTo)
}

func (s *TaskService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
