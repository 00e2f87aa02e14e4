package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportBrief struct {
	ID            uuid.UUID     `json:"id"`
	ReportDate    string        `json:"report_date"`
	OverallStatus VehicleStatus `json:"overall_status"`
	OperatorName  string        `json:"operator_name"`
	CreatedAt     time.Time     `json:"created_at"`
}

// VehicleStatusRecord pairs a vehicle with its derived condition for list
// views and work-order gating.
type VehicleStatusRecord struct {
	Vehicle    Vehicle       `json:"vehicle"`
	Status     VehicleStatus `json:"status"`
	LastReport *ReportBrief  `json:"last_report,omitempty"`
}

// TaskRecord decorates a work order with its completion-timing label.
type TaskRecord struct {
	Task       MechanicTask  `json:"task"`
	Timeliness string        `json:"timeliness,omitempty"`
	SpareParts *SparePartLog `json:"spare_parts,omitempty"`
}

type PenaltySummary struct {
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	TotalPoints int       `json:"total_points"`
	Entries     int       `json:"entries"`
}

type AttendanceDay struct {
	Masuk  *Attendance `json:"masuk,omitempty"`
	Pulang *Attendance `json:"pulang,omitempty"`
}
