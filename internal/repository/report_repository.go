package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type ReportFilter struct {
	Scope     model.Scope
	VehicleID string
	Location  string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

func applyReportScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeLocation:
		return query.Where("reports.location = ?", scope.Location)
	case model.ScopeOperator:
		if len(scope.Plates) == 0 {
			return query.Where("reports.operator_name = ?", scope.OperatorName)
		}
		return query.
			Joins("JOIN vehicles v ON v.hull_number = reports.vehicle_id").
			Where("(v.license_plate IN ? OR reports.operator_name = ?)", scope.Plates, scope.OperatorName)
	default:
		return query.Where("1=0")
	}
}

func (r *ReportRepository) List(ctx context.Context, filter ReportFilter) ([]model.Report, error) {
	query := r.db.WithContext(ctx).Model(&model.Report{})
	query = applyReportScope(query, filter.Scope)

	if filter.VehicleID != "" {
		query = query.Where("reports.vehicle_id = ?", filter.VehicleID)
	}
	if filter.Location != "" {
		query = query.Where("reports.location = ?", filter.Location)
	}
	if filter.DateFrom != nil {
		query = query.Where("reports.report_date >= ?", model.DateKey(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("reports.report_date <= ?", model.DateKey(*filter.DateTo))
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var reports []model.Report
	if err := query.Order("reports.created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Report, error) {
	query := r.db.WithContext(ctx).Model(&model.Report{}).Where("reports.id = ?", id)
	query = applyReportScope(query, scope)

	var report model.Report
	if err := query.First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByVehicle returns the full report history of one vehicle, newest first.
func (r *ReportRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ExistsForDate is the pre-insert dedup check; the unique index on
// (vehicle_id, report_date) backs it against races.
func (r *ReportRepository) ExistsForDate(ctx context.Context, vehicleID, reportDate string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("vehicle_id = ? AND report_date = ?", vehicleID, reportDate).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}
