// Package policy holds the pure business rules shared by every view of the
// checklist system: derived vehicle condition, work-order completion timing
// and the attendance clock windows. Everything here is a function of its
// arguments only.
package policy

import (
	"time"

	"checklist-service/internal/model"
)

// DeriveVehicleStatus computes today's operational status of a vehicle from
// its report history. Reports must all belong to the same vehicle; order does
// not matter.
//
// A report from a prior day only carries over when it flagged a problem. A
// stale "Good" does not count for today, which forces a fresh daily check.
func DeriveVehicleStatus(reports []model.Report, now time.Time) model.VehicleStatus {
	latest := LatestReport(reports)
	if latest == nil {
		return model.VehicleStatusNotChecked
	}
	if latest.ReportDate == model.DateKey(now) {
		return latest.OverallStatus
	}
	if latest.OverallStatus == model.VehicleStatusDamaged || latest.OverallStatus == model.VehicleStatusNeedsAttention {
		return latest.OverallStatus
	}
	return model.VehicleStatusNotChecked
}

// LatestReport returns the most recent report by submission time, or nil.
func LatestReport(reports []model.Report) *model.Report {
	var latest *model.Report
	for i := range reports {
		if latest == nil || reports[i].CreatedAt.After(latest.CreatedAt) {
			latest = &reports[i]
		}
	}
	return latest
}

// OverallStatus derives the report-level condition from its items: any RUSAK
// item or an other-damage note means Damaged, any PERLU PERHATIAN means
// Needs Attention, otherwise Good.
func OverallStatus(items []model.ReportItem, kerusakanLain *model.DamageNote) model.VehicleStatus {
	status := model.VehicleStatusGood
	if kerusakanLain != nil && kerusakanLain.Remark != "" {
		status = model.VehicleStatusDamaged
	}
	for _, item := range items {
		switch item.Status {
		case model.ItemStatusRusak:
			return model.VehicleStatusDamaged
		case model.ItemStatusPerluPerhatian:
			if status == model.VehicleStatusGood {
				status = model.VehicleStatusNeedsAttention
			}
		}
	}
	return status
}

// NeedsRepair reports whether a vehicle in the given condition may have a work
// order raised against it.
func NeedsRepair(status model.VehicleStatus) bool {
	return status == model.VehicleStatusDamaged || status == model.VehicleStatusNeedsAttention
}
