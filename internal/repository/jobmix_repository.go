package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type JobMixRepository struct {
	db *gorm.DB
}

func NewJobMixRepository(db *gorm.DB) *JobMixRepository {
	return &JobMixRepository{db: db}
}

func (r *JobMixRepository) List(ctx context.Context) ([]model.JobMixFormula, error) {
	var formulas []model.JobMixFormula
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&formulas).Error; err != nil {
		return nil, err
	}
	return formulas, nil
}

func (r *JobMixRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.JobMixFormula, error) {
	var formula model.JobMixFormula
	if err := r.db.WithContext(ctx).First(&formula, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &formula, nil
}

func (r *JobMixRepository) Create(ctx context.Context, formula *model.JobMixFormula) error {
	return r.db.WithContext(ctx).Create(formula).Error
}

func (r *JobMixRepository) Update(ctx context.Context, formula *model.JobMixFormula) error {
	return r.db.WithContext(ctx).Save(formula).Error
}

func (r *JobMixRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.JobMixFormula{}, "id = ?", id).Error
}
