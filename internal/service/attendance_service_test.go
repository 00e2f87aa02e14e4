package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"checklist-service/internal/model"
)

func newAttendanceFixture(now time.Time) (*AttendanceService, *mockAttendanceStore) {
	scopes := new(mockScopeResolver)
	attendances := new(mockAttendanceStore)
	svc := NewAttendanceService(scopes, attendances)
	svc.now = func() time.Time { return now }
	return svc, attendances
}

func attendancePrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Name: "Budi", Role: model.RoleOperator, Location: "Plant A"}
}

func TestClockInRejectedOutsideWindow(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
	}{
		{"before open", time.Date(2025, 3, 10, 2, 59, 0, 0, time.Local)},
		{"at close", time.Date(2025, 3, 10, 16, 0, 0, 0, time.Local)},
		{"late evening", time.Date(2025, 3, 10, 21, 30, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, attendances := newAttendanceFixture(tc.at)

			_, err := svc.ClockIn(context.Background(), attendancePrincipal(), "photo")

			assert.ErrorIs(t, err, ErrInvalidInput)
			attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestClockInDuplicateRejected(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	svc, attendances := newAttendanceFixture(now)
	principal := attendancePrincipal()

	existing := &model.Attendance{UserID: principal.UserID, Type: model.AttendanceMasuk, AttendanceDate: "2025-03-10"}
	attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, "2025-03-10").Return(existing, nil)

	_, err := svc.ClockIn(context.Background(), principal, "photo")

	assert.ErrorIs(t, err, ErrConflict)
	attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A second clock-in that slips past the pre-check still maps the unique-index
// violation onto the same conflict.
func TestClockInLostRaceSurfacesConflict(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	svc, attendances := newAttendanceFixture(now)
	principal := attendancePrincipal()

	attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, "2025-03-10").Return(nil, nil)
	attendances.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.ClockIn(context.Background(), principal, "photo")

	assert.ErrorIs(t, err, ErrConflict)
}

func TestClockInStatusAtCutoff(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want model.AttendanceStatus
	}{
		{"exactly 07:30:00", time.Date(2025, 3, 10, 7, 30, 0, 0, time.Local), model.AttendanceOnTime},
		{"one second past", time.Date(2025, 3, 10, 7, 30, 1, 0, time.Local), model.AttendanceLate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, attendances := newAttendanceFixture(tc.at)
			principal := attendancePrincipal()

			attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, "2025-03-10").Return(nil, nil)
			attendances.On("Create", mock.Anything, mock.Anything).Return(nil)

			attendance, err := svc.ClockIn(context.Background(), principal, "photo")

			require.NoError(t, err)
			assert.Equal(t, tc.want, attendance.Status)
			assert.Equal(t, "2025-03-10", attendance.AttendanceDate)
		})
	}
}

func TestClockOutRequiresSameDayClockIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
	svc, attendances := newAttendanceFixture(now)
	principal := attendancePrincipal()

	attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, "2025-03-10").Return(nil, nil)

	_, err := svc.ClockOut(context.Background(), principal, "photo")

	assert.ErrorIs(t, err, ErrInvalidInput)
	attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClockOutWindowBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		allowed bool
	}{
		{"blackout 17:00", time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local), false},
		{"blackout 17:14", time.Date(2025, 3, 10, 17, 14, 59, 0, time.Local), false},
		{"opens 17:15", time.Date(2025, 3, 10, 17, 15, 0, 0, time.Local), true},
		{"afternoon", time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local), false},
		{"overnight 01:30", time.Date(2025, 3, 11, 1, 30, 0, 0, time.Local), true},
		{"overnight closes 02:00", time.Date(2025, 3, 11, 2, 0, 0, 0, time.Local), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, attendances := newAttendanceFixture(tc.at)
			principal := attendancePrincipal()

			if tc.allowed {
				day := model.DateKey(tc.at)
				masuk := &model.Attendance{UserID: principal.UserID, Type: model.AttendanceMasuk, AttendanceDate: day}
				attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, day).Return(masuk, nil)
				attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendancePulang, day).Return(nil, nil)
				attendances.On("Create", mock.Anything, mock.Anything).Return(nil)
			}

			attendance, err := svc.ClockOut(context.Background(), principal, "photo")

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, model.AttendancePulang, attendance.Type)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestClockOutDuplicateRejected(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
	svc, attendances := newAttendanceFixture(now)
	principal := attendancePrincipal()

	masuk := &model.Attendance{UserID: principal.UserID, Type: model.AttendanceMasuk, AttendanceDate: "2025-03-10"}
	pulang := &model.Attendance{UserID: principal.UserID, Type: model.AttendancePulang, AttendanceDate: "2025-03-10"}
	attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendanceMasuk, "2025-03-10").Return(masuk, nil)
	attendances.On("GetForDay", mock.Anything, principal.UserID, model.AttendancePulang, "2025-03-10").Return(pulang, nil)

	_, err := svc.ClockOut(context.Background(), principal, "photo")

	assert.ErrorIs(t, err, ErrConflict)
	attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
