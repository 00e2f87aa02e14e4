package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

// AdminService owns the master data: users, vehicles, locations and job mix
// formulas. Accounts are only ever created and removed here, never
// self-registered.
type AdminService struct {
	scopes    ScopeResolver
	users     UserStore
	vehicles  VehicleStore
	locations LocationStore
	jobMixes  JobMixStore
}

func NewAdminService(scopes ScopeResolver, users UserStore, vehicles VehicleStore, locations LocationStore, jobMixes JobMixStore) *AdminService {
	return &AdminService{
		scopes:    scopes,
		users:     users,
		vehicles:  vehicles,
		locations: locations,
		jobMixes:  jobMixes,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, principal model.Principal, roles []model.Role, search string) ([]model.User, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.users.List(ctx, repository.UserFilter{Scope: scope, Roles: roles, Search: search})
}

type UserInput struct {
	Name     string
	Role     model.Role
	Nik      string
	Batangan string
	Location string
	Username string
	Password string
}

func validRole(role model.Role) bool {
	switch role {
	case model.RoleSuperAdmin, model.RoleLocationAdmin, model.RoleOperator,
		model.RoleKepalaBP, model.RoleMekanik, model.RoleLogistik:
		return true
	default:
		return false
	}
}

func (s *AdminService) checkUserInput(input UserInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !validRole(input.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	if input.Username == "" && input.Nik == "" {
		return fmt.Errorf("%w: username or nik is required", ErrInvalidInput)
	}
	if (input.Role == model.RoleOperator || input.Role == model.RoleKepalaBP) && len(model.SplitPlates(input.Batangan)) == 0 {
		return fmt.Errorf("%w: operator accounts need at least one assigned plate", ErrInvalidInput)
	}
	return nil
}

func (s *AdminService) CreateUser(ctx context.Context, principal model.Principal, input UserInput) (*model.User, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if err := s.checkUserInput(input); err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !scope.AllowsLocation(input.Location) {
		return nil, ErrPermissionDenied
	}

	user := &model.User{
		Name:     input.Name,
		Role:     input.Role,
		Nik:      input.Nik,
		Batangan: input.Batangan,
		Location: input.Location,
		Username: input.Username,
		Password: input.Password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, principal model.Principal, id uuid.UUID, input UserInput) (*model.User, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if err := s.checkUserInput(input); err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.AllowsLocation(user.Location) || !scope.AllowsLocation(input.Location) {
		return nil, ErrPermissionDenied
	}

	user.Name = input.Name
	user.Role = input.Role
	user.Nik = input.Nik
	user.Batangan = input.Batangan
	user.Location = input.Location
	user.Username = input.Username
	if input.Password != "" {
		user.Password = input.Password
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManage() {
		return ErrPermissionDenied
	}
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !scope.AllowsLocation(user.Location) {
		return ErrPermissionDenied
	}
	return s.users.Delete(ctx, id)
}

func (s *AdminService) ListVehicles(ctx context.Context, principal model.Principal, location, vehicleType, search string) ([]model.Vehicle, error) {
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.vehicles.List(ctx, repository.VehicleFilter{
		Scope:    scope,
		Location: location,
		Type:     vehicleType,
		Search:   search,
	})
}

type VehicleInput struct {
	HullNumber   string
	LicensePlate string
	Type         string
	OperatorName string
	Location     string
}

func (s *AdminService) CreateVehicle(ctx context.Context, principal model.Principal, input VehicleInput) (*model.Vehicle, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if input.HullNumber == "" || input.LicensePlate == "" || input.Location == "" {
		return nil, fmt.Errorf("%w: hull number, license plate and location are required", ErrInvalidInput)
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !scope.AllowsLocation(input.Location) {
		return nil, ErrPermissionDenied
	}

	if _, err := s.vehicles.GetByHullNumber(ctx, input.HullNumber); err == nil {
		return nil, fmt.Errorf("%w: hull number already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle := &model.Vehicle{
		HullNumber:   input.HullNumber,
		LicensePlate: input.LicensePlate,
		Type:         input.Type,
		OperatorName: input.OperatorName,
		Location:     input.Location,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *AdminService) UpdateVehicle(ctx context.Context, principal model.Principal, hullNumber string, input VehicleInput) (*model.Vehicle, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByHullNumber(ctx, hullNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !scope.AllowsLocation(vehicle.Location) || (input.Location != "" && !scope.AllowsLocation(input.Location)) {
		return nil, ErrPermissionDenied
	}

	if input.LicensePlate != "" {
		vehicle.LicensePlate = input.LicensePlate
	}
	if input.Type != "" {
		vehicle.Type = input.Type
	}
	vehicle.OperatorName = input.OperatorName
	if input.Location != "" {
		vehicle.Location = input.Location
	}

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *AdminService) DeleteVehicle(ctx context.Context, principal model.Principal, hullNumber string) error {
	if !principal.CanManage() {
		return ErrPermissionDenied
	}
	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return err
	}
	vehicle, err := s.vehicles.GetByHullNumber(ctx, hullNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !scope.AllowsLocation(vehicle.Location) {
		return ErrPermissionDenied
	}
	return s.vehicles.Delete(ctx, hullNumber)
}

func (s *AdminService) ListLocations(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

func (s *AdminService) CreateLocation(ctx context.Context, principal model.Principal, name string) (*model.Location, error) {
	if !principal.IsSuperAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	location := &model.Location{Name: name}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *AdminService) DeleteLocation(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsSuperAdmin() {
		return ErrPermissionDenied
	}
	return s.locations.Delete(ctx, id)
}

func (s *AdminService) ListJobMixes(ctx context.Context) ([]model.JobMixFormula, error) {
	return s.jobMixes.List(ctx)
}

type JobMixInput struct {
	Name       string
	Grade      string
	Components []model.MixComponent
}

func (s *AdminService) CreateJobMix(ctx context.Context, principal model.Principal, input JobMixInput) (*model.JobMixFormula, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" || len(input.Components) == 0 {
		return nil, fmt.Errorf("%w: name and components are required", ErrInvalidInput)
	}
	formula := &model.JobMixFormula{
		Name:       input.Name,
		Grade:      input.Grade,
		Components: input.Components,
	}
	if err := s.jobMixes.Create(ctx, formula); err != nil {
		return nil, err
	}
	return formula, nil
}

func (s *AdminService) UpdateJobMix(ctx context.Context, principal model.Principal, id uuid.UUID, input JobMixInput) (*model.JobMixFormula, error) {
	if !principal.CanManage() {
		return nil, ErrPermissionDenied
	}

	formula, err := s.jobMixes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		formula.Name = input.Name
	}
	formula.Grade = input.Grade
	if len(input.Components) > 0 {
		formula.Components = input.Components
	}

	if err := s.jobMixes.Update(ctx, formula); err != nil {
		return nil, err
	}
	return formula, nil
}

func (s *AdminService) DeleteJobMix(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManage() {
		return ErrPermissionDenied
	}
	return s.jobMixes.Delete(ctx, id)
}

func (s *AdminService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
