package models

import (
	"gorm.io/gorm"
)

// DanceGoal holds each user's daily dance targets.
type DanceGoal struct {
	gorm.Model
	UserID  uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Energy  float64 `json:"energy"`  // e.g. 300 kcal
	Workout float64 `json:"workout"` // e.g. 45 minutes
}
