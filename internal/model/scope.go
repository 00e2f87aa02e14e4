package model

import "github.com/google/uuid"

type ScopeType string

const (
	ScopeAll      ScopeType = "ALL"
	ScopeLocation ScopeType = "LOCATION"
	ScopeOperator ScopeType = "OPERATOR"
)

// Scope is the resolved visibility of a principal, applied uniformly to every
// list query instead of per-view role switches.
type Scope struct {
	Type         ScopeType
	Location     string
	UserID       uuid.UUID
	OperatorName string
	Plates       []string
}

func (s Scope) AllowsLocation(location string) bool {
	switch s.Type {
	case ScopeAll:
		return true
	case ScopeLocation:
		return s.Location == location
	default:
		return false
	}
}

func (s Scope) AllowsUser(userID uuid.UUID) bool {
	switch s.Type {
	case ScopeAll:
		return true
	case ScopeOperator:
		return s.UserID == userID
	default:
		return false
	}
}

// AllowsVehicle reports whether records tied to the given vehicle are visible.
// Operators match on their assigned plate list, location roles on the
// vehicle's site.
func (s Scope) AllowsVehicle(v Vehicle) bool {
	switch s.Type {
	case ScopeAll:
		return true
	case ScopeLocation:
		return s.Location == v.Location
	case ScopeOperator:
		for _, plate := range s.Plates {
			if plate == v.LicensePlate {
				return true
			}
		}
		return false
	default:
		return false
	}
}
