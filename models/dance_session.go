package models

import (
	"time"

	"gorm.io/gorm"
)

// DanceSession is one user's logged dance activity for a single calendar day.
// At most one row exists per (user_id, date); repeat submissions on the same
// day are merged into the existing row.
type DanceSession struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Date           time.Time `gorm:"index;not null" json:"date"` // truncated to local midnight
	DanceTimeInMin int       `json:"danceTimeInMin"`
	CaloriesBurned int       `json:"caloriesBurned"`
	IsDanceDay     bool      `json:"isDanceDay"`
}
