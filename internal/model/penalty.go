package model

import (
	"time"

	"github.com/google/uuid"
)

// Penalty is one entry of the append-only penalty ledger.
type Penalty struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	UserName          string    `gorm:"type:varchar(255);not null" json:"user_name"`
	UserNik           string    `gorm:"type:varchar(32)" json:"user_nik"`
	VehicleHullNumber string    `gorm:"type:varchar(64)" json:"vehicle_hull_number"`
	Points            int       `gorm:"not null" json:"points"`
	Reason            string    `gorm:"type:text;not null" json:"reason"`
	GivenBy           string    `gorm:"type:varchar(128);not null" json:"given_by"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Penalty) TableName() string {
	return "penalties"
}
