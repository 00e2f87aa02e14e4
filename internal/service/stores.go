package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

// Narrow store interfaces consumed by the services. The concrete GORM
// repositories satisfy them; tests substitute mocks.

type ScopeResolver interface {
	ResolveScope(ctx context.Context, principal model.Principal) (model.Scope, error)
}

type UserStore interface {
	List(ctx context.Context, filter repository.UserFilter) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	ListByRoleAndLocation(ctx context.Context, role model.Role, location string) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleStore interface {
	List(ctx context.Context, filter repository.VehicleFilter) ([]model.Vehicle, error)
	GetByHullNumber(ctx context.Context, hullNumber string) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, hullNumber string) error
}

type ReportStore interface {
	List(ctx context.Context, filter repository.ReportFilter) ([]model.Report, error)
	GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Report, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]model.Report, error)
	ExistsForDate(ctx context.Context, vehicleID, reportDate string) (bool, error)
	Create(ctx context.Context, report *model.Report) error
}

type TaskStore interface {
	List(ctx context.Context, filter repository.TaskFilter) ([]model.MechanicTask, error)
	GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.MechanicTask, error)
	Create(ctx context.Context, task *model.MechanicTask) error
	Update(ctx context.Context, task *model.MechanicTask) error
	LogStatusChange(ctx context.Context, logEntry *model.MechanicTaskStatusLog) error
	ListStatusLog(ctx context.Context, taskID uuid.UUID) ([]model.MechanicTaskStatusLog, error)
	GetSparePartLog(ctx context.Context, taskID uuid.UUID) (*model.SparePartLog, error)
	SparePartLogExists(ctx context.Context, taskID uuid.UUID) (bool, error)
	CreateSparePartLog(ctx context.Context, log *model.SparePartLog) error
	ListSparePartLogs(ctx context.Context, scope model.Scope, dateFrom, dateTo *time.Time) ([]model.SparePartLog, error)
}

type AttendanceStore interface {
	List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error)
	GetForDay(ctx context.Context, userID uuid.UUID, attendanceType model.AttendanceType, date string) (*model.Attendance, error)
	Create(ctx context.Context, attendance *model.Attendance) error
}

type PenaltyStore interface {
	List(ctx context.Context, filter repository.PenaltyFilter) ([]model.Penalty, error)
	Create(ctx context.Context, penalty *model.Penalty) error
	SumPointsByUser(ctx context.Context, userID uuid.UUID) (int, int, error)
}

type FeedbackStore interface {
	ListComplaints(ctx context.Context, scope model.Scope) ([]model.Complaint, error)
	CreateComplaint(ctx context.Context, complaint *model.Complaint) error
	ListSuggestions(ctx context.Context, scope model.Scope) ([]model.Suggestion, error)
	CreateSuggestion(ctx context.Context, suggestion *model.Suggestion) error
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]model.Notification, error)
	CreateNotifications(ctx context.Context, notifications []model.Notification) error
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type RitasiStore interface {
	List(ctx context.Context, filter repository.RitasiFilter) ([]model.RitasiLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RitasiLog, error)
	Create(ctx context.Context, log *model.RitasiLog) error
	Update(ctx context.Context, log *model.RitasiLog) error
}

type JobMixStore interface {
	List(ctx context.Context) ([]model.JobMixFormula, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.JobMixFormula, error)
	Create(ctx context.Context, formula *model.JobMixFormula) error
	Update(ctx context.Context, formula *model.JobMixFormula) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LocationStore interface {
	List(ctx context.Context) ([]model.Location, error)
	Create(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}
