package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"checklist-service/internal/model"
	"checklist-service/internal/repository"
)

// ExportService renders the printable checklist recap as an xlsx workbook.
// The query contract (location, vehicle, from, to) mirrors the report list.
type ExportService struct {
	scopes       ScopeResolver
	reports      ReportStore
	tasks        TaskStore
	maxRangeDays int
}

func NewExportService(scopes ScopeResolver, reports ReportStore, tasks TaskStore, maxRangeDays int) *ExportService {
	return &ExportService{scopes: scopes, reports: reports, tasks: tasks, maxRangeDays: maxRangeDays}
}

type ExportOptions struct {
	Location  string
	VehicleID string
	From      time.Time
	To        time.Time
}

var recapHeaders = []string{
	"Tanggal", "No. Lambung", "Operator", "Lokasi", "Status", "Kerusakan Lain",
}

func (s *ExportService) ReportRecap(ctx context.Context, principal model.Principal, opts ExportOptions) (*excelize.File, error) {
	if opts.To.Before(opts.From) {
		return nil, fmt.Errorf("%w: 'to' must not precede 'from'", ErrInvalidInput)
	}
	if opts.To.Sub(opts.From) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, s.maxRangeDays)
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.List(ctx, repository.ReportFilter{
		Scope:     scope,
		Location:  opts.Location,
		VehicleID: opts.VehicleID,
		DateFrom:  &opts.From,
		DateTo:    &opts.To,
		Limit:     10000,
	})
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	title := fmt.Sprintf("Rekap Checklist %s s/d %s", model.DateKey(opts.From), model.DateKey(opts.To))
	if err := file.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	for col, header := range recapHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, report := range reports {
		row := i + 4
		kerusakan := ""
		if report.KerusakanLain != nil {
			kerusakan = report.KerusakanLain.Remark
		}
		values := []interface{}{
			report.ReportDate,
			report.VehicleID,
			report.OperatorName,
			report.Location,
			string(report.OverallStatus),
			kerusakan,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := file.SetColWidth(sheet, "A", "F", 22); err != nil {
		return nil, err
	}

	return file, nil
}

// SparePartRecap renders spare-part usage for the logistics recap.
func (s *ExportService) SparePartRecap(ctx context.Context, principal model.Principal, from, to time.Time) (*excelize.File, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' must not precede 'from'", ErrInvalidInput)
	}

	scope, err := s.resolveScope(ctx, principal)
	if err != nil {
		return nil, err
	}

	logs, err := s.tasks.ListSparePartLogs(ctx, scope, &from, &to)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	headers := []string{"Tanggal", "No. Lambung", "Suku Cadang", "Dicatat Oleh"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	for i, log := range logs {
		row := i + 2
		values := []interface{}{log.LogDate, log.VehicleHullNumber, log.PartsUsed, log.LoggedByName}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	if err := file.SetColWidth(sheet, "A", "D", 24); err != nil {
		return nil, err
	}

	return file, nil
}

func (s *ExportService) resolveScope(ctx context.Context, principal model.Principal) (model.Scope, error) {
	scope, err := s.scopes.ResolveScope(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrScopeUnsupported) {
			return model.Scope{}, ErrPermissionDenied
		}
		return model.Scope{}, err
	}
	return scope, nil
}
