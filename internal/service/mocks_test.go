package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

type mockScopeResolver struct {
	mock.Mock
}

func (m *mockScopeResolver) ResolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(model.Scope), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) List(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserStore) ListByRoleAndLocation(ctx context.Context, role model.Role, location string) ([]model.User, error) {
	args := m.Called(ctx, role, location)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockVehicleStore struct {
	mock.Mock
}

func (m *mockVehicleStore) List(ctx context.Context, filter repository.VehicleFilter) ([]model.Vehicle, error) {
	args := m.Called(ctx, filter)
	vehicles, _ := args.Get(0).([]model.Vehicle)
	return vehicles, args.Error(1)
}

func (m *mockVehicleStore) GetByHullNumber(ctx context.Context, hullNumber string) (*model.Vehicle, error) {
	args := m.Called(ctx, hullNumber)
	vehicle, _ := args.Get(0).(*model.Vehicle)
	return vehicle, args.Error(1)
}

func (m *mockVehicleStore) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleStore) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleStore) Delete(ctx context.Context, hullNumber string) error {
	return m.Called(ctx, hullNumber).Error(0)
}

type mockReportStore struct {
	mock.Mock
}

func (m *mockReportStore) List(ctx context.Context, filter repository.ReportFilter) ([]model.Report, error) {
	args := m.Called(ctx, filter)
	reports, _ := args.Get(0).([]model.Report)
	return reports, args.Error(1)
}

func (m *mockReportStore) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, scope, id)
	report, _ := args.Get(0).(*model.Report)
	return report, args.Error(1)
}

func (m *mockReportStore) ListByVehicle(ctx context.Context, vehicleID string) ([]model.Report, error) {
	args := m.Called(ctx, vehicleID)
	reports, _ := args.Get(0).([]model.Report)
	return reports, args.Error(1)
}

func (m *mockReportStore) ExistsForDate(ctx context.Context, vehicleID, reportDate string) (bool, error) {
	args := m.Called(ctx, vehicleID, reportDate)
	return args.Bool(0), args.Error(1)
}

func (m *mockReportStore) Create(ctx context.Context, report *model.Report) error {
	return m.Called(ctx, report).Error(0)
}

type mockTaskStore struct {
	mock.Mock
}

func (m *mockTaskStore) List(ctx context.Context, filter repository.TaskFilter) ([]model.MechanicTask, error) {
	args := m.Called(ctx, filter)
	tasks, _ := args.Get(0).([]model.MechanicTask)
	return tasks, args.Error(1)
}

func (m *mockTaskStore) GetByID(ctx context.Context, scope model.Scope, id uuid.UUID) (*model.MechanicTask, error) {
	args := m.Called(ctx, scope, id)
	task, _ := args.Get(0).(*model.MechanicTask)
	return task, args.Error(1)
}

func (m *mockTaskStore) Create(ctx context.Context, task *model.MechanicTask) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskStore) Update(ctx context.Context, task *model.MechanicTask) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskStore) LogStatusChange(ctx context.Context, logEntry *model.MechanicTaskStatusLog) error {
	return m.Called(ctx, logEntry).Error(0)
}

func (m *mockTaskStore) ListStatusLog(ctx context.Context, taskID uuid.UUID) ([]model.MechanicTaskStatusLog, error) {
	args := m.Called(ctx, taskID)
	entries, _ := args.Get(0).([]model.MechanicTaskStatusLog)
	return entries, args.Error(1)
}

func (m *mockTaskStore) GetSparePartLog(ctx context.Context, taskID uuid.UUID) (*model.SparePartLog, error) {
	args := m.Called(ctx, taskID)
	log, _ := args.Get(0).(*model.SparePartLog)
	return log, args.Error(1)
}

func (m *mockTaskStore) SparePartLogExists(ctx context.Context, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTaskStore) CreateSparePartLog(ctx context.Context, log *model.SparePartLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockTaskStore) ListSparePartLogs(ctx context.Context, scope model.Scope, dateFrom, dateTo *time.Time) ([]model.SparePartLog, error) {
	args := m.Called(ctx, scope, dateFrom, dateTo)
	logs, _ := args.Get(0).([]model.SparePartLog)
	return logs, args.Error(1)
}

type mockAttendanceStore struct {
	mock.Mock
}

func (m *mockAttendanceStore) List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	args := m.Called(ctx, filter)
	attendances, _ := args.Get(0).([]model.Attendance)
	return attendances, args.Error(1)
}

func (m *mockAttendanceStore) GetForDay(ctx context.Context, userID uuid.UUID, attendanceType model.AttendanceType, date string) (*model.Attendance, error) {
	args := m.Called(ctx, userID, attendanceType, date)
	attendance, _ := args.Get(0).(*model.Attendance)
	return attendance, args.Error(1)
}

func (m *mockAttendanceStore) Create(ctx context.Context, attendance *model.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}

type mockPenaltyStore struct {
	mock.Mock
}

func (m *mockPenaltyStore) List(ctx context.Context, filter repository.PenaltyFilter) ([]model.Penalty, error) {
	args := m.Called(ctx, filter)
	penalties, _ := args.Get(0).([]model.Penalty)
	return penalties, args.Error(1)
}

func (m *mockPenaltyStore) Create(ctx context.Context, penalty *model.Penalty) error {
	return m.Called(ctx, penalty).Error(0)
}

func (m *mockPenaltyStore) SumPointsByUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type mockFeedbackStore struct {
	mock.Mock
}

func (m *mockFeedbackStore) ListComplaints(ctx context.Context, scope model.Scope) ([]model.Complaint, error) {
	args := m.Called(ctx, scope)
	complaints, _ := args.Get(0).([]model.Complaint)
	return complaints, args.Error(1)
}

func (m *mockFeedbackStore) CreateComplaint(ctx context.Context, complaint *model.Complaint) error {
	return m.Called(ctx, complaint).Error(0)
}

func (m *mockFeedbackStore) ListSuggestions(ctx context.Context, scope model.Scope) ([]model.Suggestion, error) {
	args := m.Called(ctx, scope)
	suggestions, _ := args.Get(0).([]model.Suggestion)
	return suggestions, args.Error(1)
}

func (m *mockFeedbackStore) CreateSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	return m.Called(ctx, suggestion).Error(0)
}

func (m *mockFeedbackStore) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]model.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	notifications, _ := args.Get(0).([]model.Notification)
	return notifications, args.Error(1)
}

func (m *mockFeedbackStore) CreateNotifications(ctx context.Context, notifications []model.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

func (m *mockFeedbackStore) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}
