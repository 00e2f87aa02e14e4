package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type UserFilter struct {
	Scope    model.Scope
	Roles    []model.Role
	Location string
	Search   string
	Limit    int
	Offset   int
}

func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]model.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	switch filter.Scope.Type {
	case model.ScopeAll:
	case model.ScopeLocation:
		query = query.Where("location = ?", filter.Scope.Location)
	case model.ScopeOperator:
		query = query.Where("id = ?", filter.Scope.UserID)
	default:
		query = query.Where("1=0")
	}

	if len(filter.Roles) > 0 {
		query = query.Where("role IN ?", filter.Roles)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR nik ILIKE ? OR username ILIKE ?)", search, search, search)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = query.Limit(200)
	}

	var users []model.User
	if err := query.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByLogin looks a user up by username or, failing that, by nik.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR nik = ?", login, login).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListByRoleAndLocation(ctx context.Context, role model.Role, location string) ([]model.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", role)
	if location != "" {
		query = query.Where("location = ? OR location IS NULL OR location = ''", location)
	}
	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}
