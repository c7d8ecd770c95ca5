package models

// BMIRecord stores a user's height/weight pair, the derived BMI and the tier
// selected from it at last write. Weight updates overwrite the row in place;
// "latest" for a user is the record with the greatest bmi_id.
type BMIRecord struct {
	BmiID            uint    `gorm:"column:bmi_id;primaryKey" json:"bmi_id"`
	UserID           uint    `gorm:"column:user_id;index;not null" json:"user_id"`
	Height           float64 `gorm:"column:height" json:"height"`
	Weight           float64 `gorm:"column:weight" json:"weight"`
	Bmi              float64 `gorm:"column:bmi" json:"bmi"`
	RecommendationID uint    `gorm:"column:recommendation_id" json:"-"`
}

func (BMIRecord) TableName() string { return "bmi_data" }
