package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"checklist-service/internal/model"
)

var ErrScopeUnsupported = errors.New("principal role is not allowed")

type ScopeRepository struct {
	db *gorm.DB
}

func NewScopeRepository(db *gorm.DB) *ScopeRepository {
	return &ScopeRepository{db: db}
}

// ResolveScope maps a principal to its visibility scope. Operator plates are
// re-read from the users table so a reassigned batangan takes effect before
// the token expires. A location-bound role with an empty location sees all
// sites.
func (r *ScopeRepository) ResolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	switch principal.Role {
	case model.RoleSuperAdmin:
		return model.Scope{Type: model.ScopeAll}, nil
	case model.RoleLocationAdmin, model.RoleMekanik, model.RoleLogistik, model.RoleKepalaBP:
		if principal.Location == "" {
			return model.Scope{Type: model.ScopeAll}, nil
		}
		return model.Scope{Type: model.ScopeLocation, Location: principal.Location}, nil
	case model.RoleOperator:
		plates := principal.Plates
		var user model.User
		err := r.db.WithContext(ctx).First(&user, "id = ?", principal.UserID).Error
		if err == nil {
			plates = user.Plates()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Scope{}, err
		}
		return model.Scope{
			Type:         model.ScopeOperator,
			UserID:       principal.UserID,
			OperatorName: principal.Name,
			Plates:       plates,
		}, nil
	default:
		return model.Scope{}, ErrScopeUnsupported
	}
}
