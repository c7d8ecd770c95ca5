package services

import (
	"errors"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"

	"gorm.io/gorm"
)

var (
	ErrNoMatchingFoods = errors.New("no foods found matching the criteria")
	ErrNoFilteredFoods = errors.New("no filtered foods found for the given user")
)

// FoodFilter mirrors the allergy questionnaire: a true flag excludes every
// catalog entry of the matching type.
type FoodFilter struct {
	Pork              bool `json:"pork"`
	AllergicToMilk    bool `json:"allergic_to_milk"`
	AllergicToFish    bool `json:"allergic_to_fish"`
	AllergicToSoy     bool `json:"allergic_to_soy"`
	AllergicToChicken bool `json:"allergic_to_chicken"`
	AllergicToMussels bool `json:"allergic_to_mussels"`
	AllergicToBeef    bool `json:"allergic_to_beef"`
}

func (f FoodFilter) excludedTypes() []string {
	var out []string
	if f.Pork {
		out = append(out, "Pork")
	}
	if f.AllergicToMilk {
		out = append(out, "Milk")
	}
	if f.AllergicToFish {
		out = append(out, "Fish")
	}
	if f.AllergicToSoy {
		out = append(out, "Soy")
	}
	if f.AllergicToChicken {
		out = append(out, "Chicken")
	}
	if f.AllergicToMussels {
		out = append(out, "Mussels")
	}
	if f.AllergicToBeef {
		out = append(out, "Beef")
	}
	return out
}

// FilterFoods drops catalog entries matching the user's exclusions and
// materializes the survivors as the user's snapshot. Re-filtering replaces
// the previous snapshot wholesale inside one transaction, so readers never
// see the union of two runs.
func FilterFoods(userID uint, filter FoodFilter) ([]models.FilteredFood, error) {
	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}

	query := config.DB.Model(&models.Food{})
	if excluded := filter.excludedTypes(); len(excluded) > 0 {
		query = query.Where("type NOT IN ?", excluded)
	}

	var foods []models.Food
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrNoMatchingFoods
	}

	snapshot := make([]models.FilteredFood, 0, len(foods))
	for _, food := range foods {
		snapshot = append(snapshot, models.FilteredFood{
			UserID:     userID,
			FoodID:     food.FoodID,
			FoodName:   food.FoodName,
			Type:       food.Type,
			Carbs:      food.Carbs,
			Protein:    food.Protein,
			Fats:       food.Fats,
			Calorie:    food.Calorie,
			Grams:      food.Grams,
			MealType:   food.MealType,
			Category:   food.Category,
			RecipeLink: food.RecipeLink,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.FilteredFood{}).Error; err != nil {
			return err
		}
		return tx.Create(&snapshot).Error
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetFilteredFoods returns the user's current snapshot.
func GetFilteredFoods(userID uint) ([]models.FilteredFood, error) {
	var rows []models.FilteredFood
	if err := config.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoFilteredFoods
	}
	return rows, nil
}

// ListFoods returns the full catalog, unfiltered.
func ListFoods() ([]models.Food, error) {
	var foods []models.Food
	if err := config.DB.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
