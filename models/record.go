package models

import "time"

// Record is an immutable log entry of one eating event. Food facts are
// denormalized at creation so later catalog or snapshot changes cannot alter
// history. FilteredFoodID is nil for ad-hoc entries.
type Record struct {
	RecordID       uint      `gorm:"column:record_id;primaryKey" json:"record_id"`
	UserID         uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	FilteredFoodID *uint     `gorm:"column:filtered_food_id" json:"filtered_id"`
	FoodName       string    `gorm:"column:food_name;not null" json:"food_name"`
	Type           string    `gorm:"column:type;not null" json:"type"`
	Carbs          int       `gorm:"column:carbs;not null" json:"carbs"`
	Protein        int       `gorm:"column:protein;not null" json:"protein"`
	Fats           int       `gorm:"column:fats;not null" json:"fats"`
	Calorie        int       `gorm:"column:calorie;not null" json:"calorie"`
	Grams          int       `gorm:"column:grams;not null" json:"grams"`
	MealType       string    `gorm:"column:meal_type;not null" json:"meal_type"`
	Category       string    `gorm:"column:category;not null" json:"category"`
	ConsumedAt     time.Time `gorm:"column:consumed_at" json:"consumed_at"`
}

func (Record) TableName() string { return "records" }
