package model

import "time"

type Vehicle struct {
	HullNumber   string    `gorm:"type:varchar(64);primaryKey" json:"hull_number"`
	LicensePlate string    `gorm:"type:varchar(32);not null" json:"license_plate"`
	Type         string    `gorm:"type:varchar(64)" json:"type"`
	OperatorName string    `gorm:"type:varchar(255)" json:"operator_name"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
