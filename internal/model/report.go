package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the derived operational condition of a vehicle.
type VehicleStatus string

const (
	VehicleStatusGood           VehicleStatus = "Good"
	VehicleStatusNeedsAttention VehicleStatus = "Needs Attention"
	VehicleStatusDamaged        VehicleStatus = "Damaged"
	VehicleStatusNotChecked     VehicleStatus = "Not Checked"
)

// ItemStatus is the condition of a single checklist item as filled in by the
// operator.
type ItemStatus string

const (
	ItemStatusBaik           ItemStatus = "BAIK"
	ItemStatusRusak          ItemStatus = "RUSAK"
	ItemStatusPerluPerhatian ItemStatus = "PERLU PERHATIAN"
)

type ReportItem struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Status ItemStatus `json:"status"`
	Remark string     `json:"remark,omitempty"`
	Photo  string     `json:"photo,omitempty"`
}

type ReportItems []ReportItem

func (items ReportItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *ReportItems) Scan(value interface{}) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported report items column type %T", value)
		}
	}
	return json.Unmarshal(raw, items)
}

// DamageNote records damage outside the checklist items (kerusakan lain).
type DamageNote struct {
	Remark string `json:"remark"`
	Photo  string `json:"photo,omitempty"`
}

func (n DamageNote) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *DamageNote) Scan(value interface{}) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported damage note column type %T", value)
		}
	}
	return json.Unmarshal(raw, n)
}

// Report is one daily checklist submission. Immutable once created; the
// (vehicle_id, report_date) pair is unique.
type Report struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID     string        `gorm:"type:varchar(64);not null" json:"vehicle_id"`
	OperatorName  string        `gorm:"type:varchar(255);not null" json:"operator_name"`
	Location      string        `gorm:"type:varchar(255);not null" json:"location"`
	ReportDate    string        `gorm:"type:varchar(10);not null" json:"report_date"`
	Items         ReportItems   `gorm:"type:jsonb;not null" json:"items"`
	KerusakanLain *DamageNote   `gorm:"type:jsonb" json:"kerusakan_lain,omitempty"`
	OverallStatus VehicleStatus `gorm:"type:varchar(32);not null" json:"overall_status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// DateLayout is the calendar-day key format used for report and attendance
// dedup.
const DateLayout = "2006-01-02"

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
