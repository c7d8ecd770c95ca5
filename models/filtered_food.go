package models

// FilteredFood is a per-user materialized copy of a catalog entry that passed
// the user's exclusion filter. Re-running the filter replaces the user's
// snapshot wholesale.
type FilteredFood struct {
	FilteredID uint    `gorm:"column:filtered_id;primaryKey" json:"filtered_id"`
	UserID     uint    `gorm:"column:user_id;index;not null" json:"user_id"`
	FoodID     uint    `gorm:"column:food_id;not null" json:"food_id"`
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

func (FilteredFood) TableName() string { return "filtered_foods" }
