package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checklist-service/internal/model"
)

func newExportFixture() (*ExportService, *mockScopeResolver, *mockReportStore, *mockTaskStore) {
	scopes := new(mockScopeResolver)
	reports := new(mockReportStore)
	tasks := new(mockTaskStore)
	return NewExportService(scopes, reports, tasks, 92), scopes, reports, tasks
}

func TestReportRecapRejectsInvertedRange(t *testing.T) {
	svc, _, reports, _ := newExportFixture()
	principal := model.Principal{Role: model.RoleSuperAdmin}

	_, err := svc.ReportRecap(context.Background(), principal, ExportOptions{
		From: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		To:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	reports.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestReportRecapRejectsOversizedRange(t *testing.T) {
	svc, _, _, _ := newExportFixture()
	principal := model.Principal{Role: model.RoleSuperAdmin}

	_, err := svc.ReportRecap(context.Background(), principal, ExportOptions{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReportRecapWritesRows(t *testing.T) {
	svc, scopes, reports, _ := newExportFixture()
	principal := model.Principal{Role: model.RoleSuperAdmin}
	scopes.On("ResolveScope", mock.Anything, principal).Return(model.Scope{Type: model.ScopeAll}, nil)

	reports.On("List", mock.Anything, mock.Anything).Return([]model.Report{
		{
			VehicleID:     "TM-01",
			OperatorName:  "Budi",
			Location:      "Plant A",
			ReportDate:    "2025-03-10",
			OverallStatus: model.VehicleStatusDamaged,
			KerusakanLain: &model.DamageNote{Remark: "bocor hidrolik"},
		},
	}, nil)

	file, err := svc.ReportRecap(context.Background(), principal, ExportOptions{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	sheet := file.GetSheetName(0)

	hull, err := file.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "TM-01", hull)

	remark, err := file.GetCellValue(sheet, "F4")
	require.NoError(t, err)
	assert.Equal(t, "bocor hidrolik", remark)
}
