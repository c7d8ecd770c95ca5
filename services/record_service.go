package services

import (
	"errors"
	"time"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/utils"

	"gorm.io/gorm"
)

var (
	ErrFilteredFoodNotFound = errors.New("filtered food not found")
	ErrNoRecords            = errors.New("no records found for the given user")
)

// AdHocFood carries the facts for a consumption entry that is not backed by a
// snapshot row.
type AdHocFood struct {
	FoodName   string
	Type       string
	Carbs      int
	Protein    int
	Fats       int
	Calorie    int
	Grams      int
	MealType   string
	Category   string
	ConsumedAt *time.Time
}

// ConsumeFromSnapshot logs one eating event from the user's filtered snapshot.
// Record creation and the progress increment happen in the same transaction,
// so the daily total always equals the sum of the day's records.
func ConsumeFromSnapshot(userID, filteredID uint) (*models.Record, *models.Progress, error) {
	if _, err := FindUserByID(userID); err != nil {
		return nil, nil, err
	}

	var record models.Record
	var progress *models.Progress
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var food models.FilteredFood
		if err := tx.First(&food, "filtered_id = ?", filteredID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFilteredFoodNotFound
			}
			return err
		}

		snapshotID := food.FilteredID
		record = models.Record{
			UserID:         userID,
			FilteredFoodID: &snapshotID,
			FoodName:       food.FoodName,
			Type:           food.Type,
			Carbs:          food.Carbs,
			Protein:        food.Protein,
			Fats:           food.Fats,
			Calorie:        food.Calorie,
			Grams:          food.Grams,
			MealType:       food.MealType,
			Category:       food.Category,
			ConsumedAt:     utils.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		p, err := applyCalories(tx, userID, &snapshotID, food.Calorie)
		if err != nil {
			return err
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &record, progress, nil
}

// ConsumeAdHoc logs an entry from caller-supplied food facts. It follows the
// exact same record-plus-increment transaction as the snapshot variant.
func ConsumeAdHoc(userID uint, food AdHocFood) (*models.Record, *models.Progress, error) {
	if _, err := FindUserByID(userID); err != nil {
		return nil, nil, err
	}

	consumedAt := utils.Now()
	if food.ConsumedAt != nil {
		consumedAt = food.ConsumedAt.In(utils.Manila)
	}

	record := models.Record{
		UserID:     userID,
		FoodName:   food.FoodName,
		Type:       food.Type,
		Carbs:      food.Carbs,
		Protein:    food.Protein,
		Fats:       food.Fats,
		Calorie:    food.Calorie,
		Grams:      food.Grams,
		MealType:   food.MealType,
		Category:   food.Category,
		ConsumedAt: consumedAt,
	}

	var progress *models.Progress
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		p, err := applyCalories(tx, userID, nil, record.Calorie)
		if err != nil {
			return err
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &record, progress, nil
}

// RecordsForUser returns the user's full consumption history.
func RecordsForUser(userID uint) ([]models.Record, error) {
	var records []models.Record
	if err := config.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
