package model

import (
	"time"

	"github.com/google/uuid"
)

// RitasiLeg names one timestamped leg of a round-trip haul cycle.
type RitasiLeg string

const (
	RitasiArriveSite  RitasiLeg = "arrive_site"
	RitasiDepartSite  RitasiLeg = "depart_site"
	RitasiArrivePlant RitasiLeg = "arrive_plant"
)

// RitasiLog is a single round-trip haul cycle. The departure leg is stamped on
// creation, the remaining legs by update.
type RitasiLog struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleHullNumber string     `gorm:"type:varchar(64);not null" json:"vehicle_hull_number"`
	OperatorID        uuid.UUID  `gorm:"type:uuid;not null" json:"operator_id"`
	OperatorName      string     `gorm:"type:varchar(255);not null" json:"operator_name"`
	Location          string     `gorm:"type:varchar(255);not null" json:"location"`
	Destination       string     `gorm:"type:varchar(255)" json:"destination"`
	LogDate           string     `gorm:"type:varchar(10);not null" json:"log_date"`
	DepartPlantAt     time.Time  `gorm:"not null" json:"depart_plant_at"`
	ArriveSiteAt      *time.Time `json:"arrive_site_at,omitempty"`
	DepartSiteAt      *time.Time `json:"depart_site_at,omitempty"`
	ArrivePlantAt     *time.Time `json:"arrive_plant_at,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RitasiLog) TableName() string {
	return "ritasi_logs"
}
