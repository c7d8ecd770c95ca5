package models

import "time"

// Progress holds the running calorie total for one (user, calendar day). The
// unique index enforces at most one row per user per day; DailyCalories is the
// recommendation target frozen when the row was created.
type Progress struct {
	ProgressID    uint      `gorm:"column:progress_id;primaryKey" json:"progress_id"`
	UserID        uint      `gorm:"column:user_id;not null;uniqueIndex:idx_progress_user_date" json:"user_id"`
	FilteredID    *uint     `gorm:"column:filtered_id" json:"filtered_id"`
	TotalCalories int       `gorm:"column:total_calories;not null" json:"total_calories"`
	Date          time.Time `gorm:"column:date;not null;uniqueIndex:idx_progress_user_date" json:"date"`
	DailyCalories int       `gorm:"column:daily_calories" json:"daily_calories"`
}

func (Progress) TableName() string { return "progress" }
