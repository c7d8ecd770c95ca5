package models

// Recommendation is static reference data: one row per BMI tier, seeded at
// startup and managed outside normal request flow.
type Recommendation struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"id"`
	Plan          string `gorm:"column:plan" json:"plan"`
	DailyCalories int    `gorm:"column:daily_calories" json:"daily_calories"`
}

func (Recommendation) TableName() string { return "recommendations" }
