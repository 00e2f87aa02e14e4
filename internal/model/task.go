package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusDelayed    TaskStatus = "DELAYED"
)

// TaskMechanic is a name snapshot of an assigned mechanic, not a live foreign
// key.
type TaskMechanic struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TaskMechanics []TaskMechanic

func (m TaskMechanics) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *TaskMechanics) Scan(value interface{}) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported mechanics column type %T", value)
		}
	}
	return json.Unmarshal(raw, m)
}

// MechanicTask is a work order raised against a vehicle in Damaged or
// Needs Attention condition.
type MechanicTask struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleHullNumber string        `gorm:"type:varchar(64);not null" json:"vehicle_hull_number"`
	LicensePlate      string        `gorm:"type:varchar(32)" json:"license_plate"`
	Location          string        `gorm:"type:varchar(255);not null" json:"location"`
	RepairDescription string        `gorm:"type:text;not null" json:"repair_description"`
	TargetDate        string        `gorm:"type:varchar(10);not null" json:"target_date"`
	TargetTime        string        `gorm:"type:varchar(5);not null" json:"target_time"`
	TriggeringReport  *uuid.UUID    `gorm:"type:uuid;column:triggering_report_id" json:"triggering_report_id,omitempty"`
	Mechanics         TaskMechanics `gorm:"type:jsonb;not null" json:"mechanics"`
	Status            TaskStatus    `gorm:"type:task_status;not null;default:'PENDING'" json:"status"`
	DelayReason       string        `gorm:"type:text" json:"delay_reason,omitempty"`
	StartedAt         *time.Time    `json:"started_at,omitempty"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MechanicTask) TableName() string {
	return "mechanic_tasks"
}

type MechanicTaskStatusLog struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TaskID    uuid.UUID   `gorm:"type:uuid;not null" json:"task_id"`
	OldStatus *TaskStatus `gorm:"type:task_status" json:"old_status"`
	NewStatus TaskStatus  `gorm:"type:task_status;not null" json:"new_status"`
	Note      string      `gorm:"type:text" json:"note"`
	ChangedBy *uuid.UUID  `gorm:"type:uuid" json:"changed_by"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (MechanicTaskStatusLog) TableName() string {
	return "mechanic_task_status_log"
}

func (l *MechanicTaskStatusLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// SparePartLog records parts consumed by a work order. One per task.
type SparePartLog struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TaskID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"task_id"`
	VehicleHullNumber string    `gorm:"type:varchar(64);not null" json:"vehicle_hull_number"`
	PartsUsed         string    `gorm:"type:text;not null" json:"parts_used"`
	LogDate           string    `gorm:"type:varchar(10);not null" json:"log_date"`
	LoggedByName      string    `gorm:"type:varchar(255);not null" json:"logged_by_name"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SparePartLog) TableName() string {
	return "spare_part_logs"
}
