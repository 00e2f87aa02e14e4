package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      Role      `gorm:"type:user_role;not null" json:"role"`
	Nik       string    `gorm:"type:varchar(32)" json:"nik"`
	Batangan  string    `gorm:"type:text" json:"batangan"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Username  string    `gorm:"type:varchar(128)" json:"username"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Plates returns the license plates this user is assigned to operate.
func (u User) Plates() []string {
	return SplitPlates(u.Batangan)
}

type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Location) TableName() string {
	return "locations"
}
