package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceType string

const (
	AttendanceMasuk  AttendanceType = "masuk"
	AttendancePulang AttendanceType = "pulang"
)

type AttendanceStatus string

const (
	AttendanceOnTime AttendanceStatus = "Tepat Waktu"
	AttendanceLate   AttendanceStatus = "Terlambat"
)

// Attendance is a single clock-in or clock-out. At most one of each type per
// user per calendar day.
type Attendance struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	UserName       string           `gorm:"type:varchar(255);not null" json:"user_name"`
	Type           AttendanceType   `gorm:"type:attendance_type;not null" json:"type"`
	Status         AttendanceStatus `gorm:"type:varchar(32)" json:"status"`
	Location       string           `gorm:"type:varchar(255)" json:"location"`
	Photo          string           `gorm:"type:text" json:"photo,omitempty"`
	AttendanceDate string           `gorm:"type:varchar(10);not null" json:"attendance_date"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
