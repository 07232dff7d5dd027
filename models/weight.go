package models

import (
	"time"

	"gorm.io/gorm"
)

// Weight tracks a user's starting and target body weight. One row per user;
// measurements over time live in the History records.
type Weight struct {
	gorm.Model
	UserID   uint           `gorm:"index;not null" json:"userId"`
	Starting float64        `json:"starting"`
	Target   float64        `json:"target"`
	Unit     string         `json:"unit"` // "kg" or "lbs"
	History  []WeightRecord `gorm:"constraint:OnDelete:CASCADE" json:"history"`
}

// WeightRecord is a single dated measurement. A same-day entry with the same
// unit is replaced rather than duplicated.
type WeightRecord struct {
	gorm.Model
	WeightID uint      `gorm:"index;not null" json:"weightId"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Date     time.Time `gorm:"index" json:"date"` // truncated to local midnight
}
