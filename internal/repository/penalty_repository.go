package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type PenaltyRepository struct {
	db *gorm.DB
}

func NewPenaltyRepository(db *gorm.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

type PenaltyFilter struct {
	Scope  model.Scope
	UserID *uuid.UUID
	Limit  int
	Offset int
}

func (r *PenaltyRepository) List(ctx context.Context, filter PenaltyFilter) ([]model.Penalty, error) {
	query := r.db.WithContext(ctx).Model(&model.Penalty{})

	switch filter.Scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		query = query.
			Joins("JOIN users u ON u.id = penalties.user_id").
			Where("u.location = ?", filter.Scope.Location)
	case model.ScopeOperator:
		query = query.Where("penalties.user_id = ?", filter.Scope.UserID)
	default:
		query = query.Where("1=0")
	}

	if filter.UserID != nil {
		query = query.Where("penalties.user_id = ?", *filter.UserID)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var penalties []model.Penalty
	if err := query.Order("penalties.created_at DESC").Find(&penalties).Error; err != nil {
		return nil, err
	}
	return penalties, nil
}

func (r *PenaltyRepository) Create(ctx context.Context, penalty *model.Penalty) error {
	return r.db.WithContext(ctx).Create(penalty).Error
}

// SumPointsByUser returns the exact total of the append-only ledger for one
// user.
func (r *PenaltyRepository) SumPointsByUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	type row struct {
		Total   int
		Entries int
	}
	var result row
	err := r.db.WithContext(ctx).
		Model(&model.Penalty{}).
		Select("COALESCE(SUM(points), 0) AS total, COUNT(*) AS entries").
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Total, result.Entries, nil
}
