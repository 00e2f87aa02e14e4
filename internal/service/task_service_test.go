package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checklist-service/internal/model"
)

func newTaskFixture(now time.Time) (*TaskService, *mockScopeResolver, *mockTaskStore, *mockReportStore, *mockVehicleStore) {
	scopes := new(mockScopeResolver)
	tasks := new(mockTaskStore)
	reports := new(mockReportStore)
	vehicles := new(mockVehicleStore)
	svc := NewTaskService(scopes, tasks, reports, vehicles)
	svc.now = func() time.Time { return now }
	return svc, scopes, tasks, reports, vehicles
}

func mechanicPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Name: "Joko", Role: model.RoleMekanik, Location: "Plant A"}
}

func locationScope() model.Scope {
	return model.Scope{Type: model.ScopeLocation, Location: "Plant A"}
}

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from model.TaskStatus
		to   model.TaskStatus
		ok   bool
	}{
		{model.TaskStatusPending, model.TaskStatusInProgress, true},
		{model.TaskStatusPending, model.TaskStatusDelayed, true},
		{model.TaskStatusPending, model.TaskStatusCompleted, false},
		{model.TaskStatusInProgress, model.TaskStatusCompleted, true},
		{model.TaskStatusInProgress, model.TaskStatusDelayed, true},
		{model.TaskStatusInProgress, model.TaskStatusPending, false},
		{model.TaskStatusDelayed, model.TaskStatusPending, true},
		{model.TaskStatusDelayed, model.TaskStatusInProgress, true},
		{model.TaskStatusDelayed, model.TaskStatusCompleted, true},
		{model.TaskStatusCompleted, model.TaskStatusPending, false},
		{model.TaskStatusCompleted, model.TaskStatusInProgress, false},
		{model.TaskStatusCompleted, model.TaskStatusDelayed, false},
		{model.TaskStatusPending, model.TaskStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, transitionAllowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc, _, tasks, _, _ := newTaskFixture(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	principal := mechanicPrincipal()

	_, err := svc.List(context.Background(), principal, ListTasksOptions{
		Statuses: []model.TaskStatus{model.TaskStatusPending, "BROKEN"},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	tasks.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUpdateStatusStampsStartAndCompletion(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)
	principal := mechanicPrincipal()
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusPending, Location: "Plant A"}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)
	tasks.On("Update", mock.Anything, task).Return(nil)
	tasks.On("LogStatusChange", mock.Anything, mock.MatchedBy(func(l *model.MechanicTaskStatusLog) bool {
		return l.TaskID == taskID && l.NewStatus == model.TaskStatusInProgress &&
			l.OldStatus != nil && *l.OldStatus == model.TaskStatusPending
	})).Return(nil)

	err := svc.UpdateStatus(context.Background(), principal, taskID, model.TaskStatusInProgress, "")

	require.NoError(t, err)
	require.NotNil(t, task.StartedAt)
	assert.Equal(t, now, *task.StartedAt)
	assert.Nil(t, task.CompletedAt)
	tasks.AssertExpectations(t)
}

func TestUpdateStatusKeepsOriginalStartOnResume(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)
	principal := mechanicPrincipal()
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	started := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusDelayed, DelayReason: "menunggu suku cadang", StartedAt: &started}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)
	tasks.On("Update", mock.Anything, task).Return(nil)
	tasks.On("LogStatusChange", mock.Anything, mock.Anything).Return(nil)

	err := svc.UpdateStatus(context.Background(), principal, taskID, model.TaskStatusInProgress, "")

	require.NoError(t, err)
	assert.Equal(t, started, *task.StartedAt)
	assert.Empty(t, task.DelayReason)
}

func TestUpdateStatusCompletedIsTerminal(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)
	principal := mechanicPrincipal()
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	completedAt := now.Add(-time.Hour)
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusCompleted, CompletedAt: &completedAt}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)

	err := svc.UpdateStatus(context.Background(), principal, taskID, model.TaskStatusInProgress, "")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatusDelayedNeedsReason(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)
	principal := mechanicPrincipal()
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusInProgress}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)

	err := svc.UpdateStatus(context.Background(), principal, taskID, model.TaskStatusDelayed, "  macet  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
	tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatusOperatorDenied(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _, _, _, _ := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Role: model.RoleOperator}
	err := svc.UpdateStatus(context.Background(), principal, uuid.New(), model.TaskStatusInProgress, "")

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateTaskRequiresRepairFlag(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, scopes, _, reports, vehicles := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Name: "Admin", Role: model.RoleLocationAdmin, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	vehicle := &model.Vehicle{HullNumber: "TM-01", LicensePlate: "B 1234 XY", Location: "Plant A"}
	vehicles.On("GetByHullNumber", mock.Anything, "TM-01").Return(vehicle, nil)

	// Today's report says Good, so there is nothing to repair.
	good := model.Report{
		VehicleID:     "TM-01",
		ReportDate:    "2025-03-10",
		OverallStatus: model.VehicleStatusGood,
		CreatedAt:     now.Add(-2 * time.Hour),
	}
	reports.On("ListByVehicle", mock.Anything, "TM-01").Return([]model.Report{good}, nil)

	_, err := svc.Create(context.Background(), principal, CreateTaskInput{
		VehicleHullNumber: "TM-01",
		RepairDescription: "ganti kampas rem",
		TargetDate:        "2025-03-12",
		TargetTime:        "15:00",
		Mechanics:         []model.TaskMechanic{{ID: uuid.New(), Name: "Joko"}},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateTaskLogsInitialStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, scopes, tasks, reports, vehicles := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Name: "Admin", Role: model.RoleLocationAdmin, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	vehicle := &model.Vehicle{HullNumber: "TM-01", LicensePlate: "B 1234 XY", Location: "Plant A"}
	vehicles.On("GetByHullNumber", mock.Anything, "TM-01").Return(vehicle, nil)

	damaged := model.Report{
		VehicleID:     "TM-01",
		ReportDate:    "2025-03-10",
		OverallStatus: model.VehicleStatusDamaged,
		CreatedAt:     now.Add(-2 * time.Hour),
	}
	reports.On("ListByVehicle", mock.Anything, "TM-01").Return([]model.Report{damaged}, nil)
	tasks.On("Create", mock.Anything, mock.Anything).Return(nil)
	tasks.On("LogStatusChange", mock.Anything, mock.MatchedBy(func(l *model.MechanicTaskStatusLog) bool {
		return l.NewStatus == model.TaskStatusPending && l.OldStatus == nil
	})).Return(nil)

	task, err := svc.Create(context.Background(), principal, CreateTaskInput{
		VehicleHullNumber: "TM-01",
		RepairDescription: "ganti kampas rem",
		TargetDate:        "2025-03-12",
		TargetTime:        "15:00",
		Mechanics:         []model.TaskMechanic{{ID: uuid.New(), Name: "Joko"}},
	})

	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.Equal(t, "B 1234 XY", task.LicensePlate)
	tasks.AssertExpectations(t)
}

func TestLogSparePartsOnlyForCompletedTask(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Name: "Sari", Role: model.RoleLogistik, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusInProgress, VehicleHullNumber: "TM-01"}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)

	_, err := svc.LogSpareParts(context.Background(), principal, taskID, SparePartInput{PartsUsed: "kampas rem 2x"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	tasks.AssertNotCalled(t, "CreateSparePartLog", mock.Anything, mock.Anything)
}

func TestLogSparePartsOncePerTask(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Name: "Sari", Role: model.RoleLogistik, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusCompleted, VehicleHullNumber: "TM-01"}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)
	tasks.On("SparePartLogExists", mock.Anything, taskID).Return(true, nil)

	_, err := svc.LogSpareParts(context.Background(), principal, taskID, SparePartInput{PartsUsed: "kampas rem 2x"})

	assert.ErrorIs(t, err, ErrConflict)
	tasks.AssertNotCalled(t, "CreateSparePartLog", mock.Anything, mock.Anything)
}

func TestLogSparePartsRecordsSnapshot(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
	svc, scopes, tasks, _, _ := newTaskFixture(now)

	principal := model.Principal{UserID: uuid.New(), Name: "Sari", Role: model.RoleLogistik, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(locationScope(), nil)

	taskID := uuid.New()
	task := &model.MechanicTask{ID: taskID, Status: model.TaskStatusCompleted, VehicleHullNumber: "TM-01"}
	tasks.On("GetByID", mock.Anything, mock.Anything, taskID).Return(task, nil)
	tasks.On("SparePartLogExists", mock.Anything, taskID).Return(false, nil)
	tasks.On("CreateSparePartLog", mock.Anything, mock.Anything).Return(nil)

	log, err := svc.LogSpareParts(context.Background(), principal, taskID, SparePartInput{PartsUsed: "kampas rem 2x"})

	require.NoError(t, err)
	assert.Equal(t, "TM-01", log.VehicleHullNumber)
	assert.Equal(t, "2025-03-12", log.LogDate)
	assert.Equal(t, "Sari", log.LoggedByName)
}
