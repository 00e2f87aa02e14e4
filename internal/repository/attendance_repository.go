package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

type AttendanceFilter struct {
	Scope    model.Scope
	UserID   *uuid.UUID
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error) {
	query := r.db.WithContext(ctx).Model(&model.Attendance{})

	switch filter.Scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		query = query.Where("attendances.location = ?", filter.Scope.Location)
	case model.ScopeOperator:
		query = query.Where("attendances.user_id = ?", filter.Scope.UserID)
	default:
		query = query.Where("1=0")
	}

	if filter.UserID != nil {
		query = query.Where("attendances.user_id = ?", *filter.UserID)
	}
	if filter.DateFrom != "" {
		query = query.Where("attendances.attendance_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("attendances.attendance_date <= ?", filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(500)
	}

	var attendances []model.Attendance
	if err := query.Order("attendances.created_at DESC").Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

// GetForDay returns the record of the given type for a user and calendar day,
// or nil when none exists. This is the pre-insert dedup check; the unique
// index on (user_id, type, attendance_date) backs it against races.
func (r *AttendanceRepository) GetForDay(ctx context.Context, userID uuid.UUID, attendanceType model.AttendanceType, date string) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND attendance_date = ?", userID, attendanceType, date).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}
