package models

// Food is one admin-managed catalog entry. Macros are stored as plain
// integers; unit suffixes are stripped before anything reaches this table.
type Food struct {
	FoodID     uint    `gorm:"column:food_id;primaryKey" json:"food_id"`
	FoodName   string  `gorm:"column:food_name;not null" json:"food_name"`
	Type       string  `gorm:"column:type;not null" json:"type"`
	Carbs      int     `gorm:"column:carbs;not null" json:"carbs"`
	Protein    int     `gorm:"column:protein;not null" json:"protein"`
	Fats       int     `gorm:"column:fats;not null" json:"fats"`
	Calorie    int     `gorm:"column:calorie;not null" json:"calorie"`
	Grams      int     `gorm:"column:grams;not null" json:"grams"`
	MealType   string  `gorm:"column:meal_type;not null" json:"meal_type"`
	Category   string  `gorm:"column:category;not null" json:"category"`
	RecipeLink *string `gorm:"column:recipe_link" json:"recipe_link"`
}

func (Food) TableName() string { return "foods" }
