package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MixComponent struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type MixComponents []MixComponent

func (c MixComponents) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *MixComponents) Scan(value interface{}) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported mix components column type %T", value)
		}
	}
	return json.Unmarshal(raw, c)
}

// JobMixFormula is a concrete mix design managed by admins.
type JobMixFormula struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name       string        `gorm:"type:varchar(255);not null" json:"name"`
	Grade      string        `gorm:"type:varchar(64)" json:"grade"`
	Components MixComponents `gorm:"type:jsonb;not null" json:"components"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JobMixFormula) TableName() string {
	return "job_mix_formulas"
}
