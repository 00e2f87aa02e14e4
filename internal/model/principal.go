package model

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleLocationAdmin Role = "LOCATION_ADMIN"
	RoleOperator      Role = "OPERATOR"
	RoleKepalaBP      Role = "KEPALA_BP"
	RoleMekanik       Role = "MEKANIK"
	RoleLogistik      Role = "LOGISTIK"
)

// Principal is the authenticated caller, rebuilt per request from token claims.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Name     string
	Role     Role
	Location string
	Plates   []string
}

func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

func (p Principal) IsLocationAdmin() bool {
	return p.Role == RoleLocationAdmin
}

// IsOperatorClass reports whether the caller drives assigned vehicles.
// KEPALA_BP works a plate list like an operator but keeps location visibility.
func (p Principal) IsOperatorClass() bool {
	return p.Role == RoleOperator || p.Role == RoleKepalaBP
}

func (p Principal) IsMekanik() bool {
	return p.Role == RoleMekanik
}

func (p Principal) IsLogistik() bool {
	return p.Role == RoleLogistik
}

// CanManage reports whether the caller may create, edit or delete master data.
func (p Principal) CanManage() bool {
	return p.Role == RoleSuperAdmin || p.Role == RoleLocationAdmin
}

// SplitPlates parses a comma separated batangan string into plate numbers.
func SplitPlates(batangan string) []string {
	parts := strings.Split(batangan, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
