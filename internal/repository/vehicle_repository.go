package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type VehicleFilter struct {
	Scope    model.Scope
	Location string
	Type     string
	Search   string
}

func applyVehicleScope(query *gorm.DB, scope model.Scope) *gorm.DB {
	switch scope.Type {
	case model.ScopeAll:
		return query
	case model.ScopeLocation:
		return query.Where("vehicles.location = ?", scope.Location)
	case model.ScopeOperator:
		if len(scope.Plates) == 0 {
			return query.Where("1=0")
		}
		return query.Where("vehicles.license_plate IN ?", scope.Plates)
	default:
		return query.Where("1=0")
	}
}

func (r *VehicleRepository) List(ctx context.Context, filter VehicleFilter) ([]model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})
	query = applyVehicleScope(query, filter.Scope)

	if filter.Location != "" {
		query = query.Where("vehicles.location = ?", filter.Location)
	}
	if filter.Type != "" {
		query = query.Where("vehicles.type = ?", filter.Type)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("(vehicles.hull_number ILIKE ? OR vehicles.license_plate ILIKE ?)", search, search)
	}

	var vehicles []model.Vehicle
	if err := query.Order("vehicles.hull_number ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByHullNumber(ctx context.Context, hullNumber string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "hull_number = ?", hullNumber).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, hullNumber string) error {
	return r.db.WithContext(ctx).Delete(&model.Vehicle{}, "hull_number = ?", hullNumber).Error
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Location{}, "id = ?", id).Error
}
