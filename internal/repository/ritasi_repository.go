package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type RitasiRepository struct {
	db *gorm.DB
}

func NewRitasiRepository(db *gorm.DB) *RitasiRepository {
	return &RitasiRepository{db: db}
}

type RitasiFilter struct {
	Scope     model.Scope
	VehicleID string
	DateFrom  string
	DateTo    string
	Limit     int
	Offset    int
}

func (r *RitasiRepository) List(ctx context.Context, filter RitasiFilter) ([]model.RitasiLog, error) {
	query := r.db.WithContext(ctx).Model(&model.RitasiLog{})

	switch filter.Scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		query = query.Where("ritasi_logs.location = ?", filter.Scope.Location)
	case model.ScopeOperator:
		query = query.Where("ritasi_logs.operator_id = ?", filter.Scope.UserID)
	default:
		query = query.Where("1=0")
	}

	if filter.VehicleID != "" {
		query = query.Where("ritasi_logs.vehicle_hull_number = ?", filter.VehicleID)
	}
	if filter.DateFrom != "" {
		query = query.Where("ritasi_logs.log_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("ritasi_logs.log_date <= ?", filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var logs []model.RitasiLog
	if err := query.Order("ritasi_logs.created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *RitasiRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RitasiLog, error) {
	var log model.RitasiLog
	if err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *RitasiRepository) Create(ctx context.Context, log *model.RitasiLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *RitasiRepository) Update(ctx context.Context, log *model.RitasiLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}
