package models

import (
	"gorm.io/gorm"
)

// UserTotalStats is the denormalized lifetime summary over a user's dance
// sessions. It is created lazily on the first session and updated on every
// submission; CurrentStreak never exceeds LongestStreak.
type UserTotalStats struct {
	gorm.Model
	UserID              uint `gorm:"uniqueIndex;not null" json:"userId"`
	TotalDanceTimeInMin int  `json:"totalDanceTimeInMin"`
	TotalCaloriesBurned int  `json:"totalCaloriesBurned"`
	TotalDanceDays      int  `json:"totalDanceDays"`
	CurrentStreak       int  `json:"currentStreak"`
	LongestStreak       int  `json:"longestStreak"`
}
