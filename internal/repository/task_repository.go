package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type TaskFilter struct {
	Scope      model.Scope
	Statuses   []model.TaskStatus
	VehicleID  string
	MechanicID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

func applyTaskScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeLocation:
		return query.Where("mechanic_tasks.location = ?", scope.Location)
	case model.ScopeOperator:
		if len(scope.Plates) == 0 {
			return query.Where("1=0")
		}
		return query.Where("mechanic_tasks.license_plate IN ?", scope.Plates)
	default:
		return query.Where("1=0")
	}
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.MechanicTask, error) {
	query := r.db.WithContext(ctx).Model(&model.MechanicTask{})
	query = applyTaskScope(query, filter.Scope)

	if len(filter.Statuses) > 0 {
		query = query.Where("mechanic_tasks.status IN ?", filter.Statuses)
	}
	if filter.VehicleID != "" {
		query = query.Where("mechanic_tasks.vehicle_hull_number = ?", filter.VehicleID)
	}
	if filter.MechanicID != nil {
		query = query.Where("mechanic_tasks.mechanics @> ?", `[{"id":"`+filter.MechanicID.String()+`"}]`)
	}
	if filter.DateFrom != nil {
		query = query.Where("mechanic_tasks.created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("mechanic_tasks.created_at <= ?", *filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var tasks []model.MechanicTask
	if err := query.Order("mechanic_tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.MechanicTask, error) {
	query := r.db.WithContext(ctx).Model(&model.MechanicTask{}).Where("mechanic_tasks.id = ?", id)
	query = applyTaskScope(query, scope)

	var task model.MechanicTask
	if err := query.First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.MechanicTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) Update(ctx context.Context, task *model.MechanicTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) LogStatusChange(ctx context.Context, logEntry *model.MechanicTaskStatusLog) error {
	return r.db.WithContext(ctx).Create(logEntry).Error
}

func (r *TaskRepository) ListStatusLog(ctx context.Context, taskID uuid.UUID) ([]model.MechanicTaskStatusLog, error) {
	var entries []model.MechanicTaskStatusLog
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TaskRepository) GetSparePartLog(ctx context.Context, taskID uuid.UUID) (*model.SparePartLog, error) {
	var log model.SparePartLog
	if err := r.db.WithContext(ctx).First(&log, "task_id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *TaskRepository) SparePartLogExists(ctx context.Context, taskID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.SparePartLog{}).
		Where("task_id = ?", taskID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TaskRepository) CreateSparePartLog(ctx context.Context, log *model.SparePartLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *TaskRepository) ListSparePartLogs(ctx context.Context, scope model.Scope, dateFrom, dateTo *time.Time) ([]model.SparePartLog, error) {
	query := r.db.WithContext(ctx).Model(&model.SparePartLog{}).
		Joins("JOIN mechanic_tasks mt ON mt.id = spare_part_logs.task_id")

	switch scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		query = query.Where("mt.location = ?", scope.Location)
	default:
		query = query.Where("1=0")
	}

	if dateFrom != nil {
		query = query.Where("spare_part_logs.log_date >= ?", model.DateKey(*dateFrom))
	}
	if dateTo != nil {
		query = query.Where("spare_part_logs.log_date <= ?", model.DateKey(*dateTo))
	}

	var logs []model.SparePartLog
	if err := query.Order("spare_part_logs.created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
