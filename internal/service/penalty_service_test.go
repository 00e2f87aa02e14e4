package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checklist-service/internal/model"
)

func newPenaltyFixture() (*PenaltyService, *mockScopeResolver, *mockPenaltyStore, *mockUserStore) {
	scopes := new(mockScopeResolver)
	penalties := new(mockPenaltyStore)
	users := new(mockUserStore)
	return NewPenaltyService(scopes, penalties, users), scopes, penalties, users
}

func TestPenaltyCreateValidatesPoints(t *testing.T) {
	svc, _, penalties, _ := newPenaltyFixture()
	principal := model.Principal{UserID: uuid.New(), Name: "Admin", Role: model.RoleLocationAdmin, Location: "Plant A"}

	for _, points := range []int{0, -3, 11} {
		_, err := svc.Create(context.Background(), principal, CreatePenaltyInput{
			UserID: uuid.New(),
			Points: points,
			Reason: "terlambat berangkat",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	penalties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPenaltyCreateDeniedForMechanic(t *testing.T) {
	svc, _, _, _ := newPenaltyFixture()
	principal := model.Principal{UserID: uuid.New(), Role: model.RoleMekanik, Location: "Plant A"}

	_, err := svc.Create(context.Background(), principal, CreatePenaltyInput{
		UserID: uuid.New(),
		Points: 3,
		Reason: "terlambat berangkat",
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestPenaltyCreateSnapshotsUser(t *testing.T) {
	svc, scopes, penalties, users := newPenaltyFixture()
	principal := model.Principal{UserID: uuid.New(), Username: "admin.plant-a", Name: "Admin", Role: model.RoleLocationAdmin, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(model.Scope{Type: model.ScopeLocation, Location: "Plant A"}, nil)

	target := &model.User{ID: uuid.New(), Name: "Budi", Nik: "3201", Role: model.RoleOperator, Location: "Plant A"}
	users.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	penalties.On("Create", mock.Anything, mock.Anything).Return(nil)

	penalty, err := svc.Create(context.Background(), principal, CreatePenaltyInput{
		UserID: target.ID,
		Points: 5,
		Reason: "tidak mengisi checklist",
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi", penalty.UserName)
	assert.Equal(t, "3201", penalty.UserNik)
	assert.Equal(t, "admin.plant-a", penalty.GivenBy)
}

func TestPenaltySummaryTotalsLedger(t *testing.T) {
	svc, scopes, penalties, users := newPenaltyFixture()
	principal := model.Principal{UserID: uuid.New(), Name: "Admin", Role: model.RoleSuperAdmin}
	scopes.On("ResolveScope", mock.Anything, principal).Return(model.Scope{Type: model.ScopeAll}, nil)

	target := &model.User{ID: uuid.New(), Name: "Budi", Location: "Plant A"}
	users.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	penalties.On("SumPointsByUser", mock.Anything, target.ID).Return(12, 3, nil)

	summary, err := svc.Summary(context.Background(), principal, target.ID)

	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalPoints)
	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, "Budi", summary.UserName)
}

func TestPenaltySummaryOperatorOnlyOwn(t *testing.T) {
	svc, scopes, _, users := newPenaltyFixture()
	principal := model.Principal{UserID: uuid.New(), Name: "Budi", Role: model.RoleOperator, Location: "Plant A"}
	scopes.On("ResolveScope", mock.Anything, principal).Return(model.Scope{Type: model.ScopeOperator, UserID: principal.UserID}, nil)

	other := &model.User{ID: uuid.New(), Name: "Andi", Location: "Plant A"}
	users.On("GetByID", mock.Anything, other.ID).Return(other, nil)

	_, err := svc.Summary(context.Background(), principal, other.ID)

	assert.ErrorIs(t, err, ErrPermissionDenied)
}
