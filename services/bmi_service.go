package services

import (
	"errors"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/utils"

	"gorm.io/gorm"
)

var (
	ErrBmiNotFound            = errors.New("bmi record not found")
	ErrRecommendationNotFound = errors.New("no bmi record or recommendation found")
)

// BmiDetail is a BMI record with its owner and recommendation tier resolved.
type BmiDetail struct {
	Record         models.BMIRecord
	User           models.User
	Recommendation models.Recommendation
}

// CreateBmiRecord computes the BMI from the given height/weight, selects the
// tier and persists a new record for the user.
func CreateBmiRecord(userID uint, height, weight float64) (*BmiDetail, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	bmiValue, err := utils.CalculateBMI(weight, height)
	if err != nil {
		return nil, err
	}

	record := models.BMIRecord{
		UserID:           userID,
		Height:           height,
		Weight:           weight,
		Bmi:              bmiValue,
		RecommendationID: utils.TierForBMI(bmiValue),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return resolveDetail(record, user)
}

// LatestBmiForUser returns the record with the greatest bmi_id for the user,
// the proxy for "most recent".
func LatestBmiForUser(userID uint) (*BmiDetail, error) {
	record, err := latestRecord(config.DB, userID)
	if err != nil {
		return nil, err
	}
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return resolveDetail(*record, user)
}

// UpdateWeight overwrites the user's record in place: the stored height is
// reused, BMI recomputed and the tier re-selected. No history row is kept.
func UpdateWeight(userID uint, weight float64) (*BmiDetail, error) {
	record, err := latestRecord(config.DB, userID)
	if err != nil {
		return nil, err
	}

	bmiValue, err := utils.CalculateBMI(weight, record.Height)
	if err != nil {
		return nil, err
	}

	record.Weight = weight
	record.Bmi = bmiValue
	record.RecommendationID = utils.TierForBMI(bmiValue)
	if err := config.DB.Save(record).Error; err != nil {
		return nil, err
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return resolveDetail(*record, user)
}

// RecommendationForBMI is the stateless what-if lookup: it tiers the given
// BMI value without touching any stored record.
func RecommendationForBMI(bmi float64) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := config.DB.First(&rec, utils.TierForBMI(bmi)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func latestRecord(tx *gorm.DB, userID uint) (*models.BMIRecord, error) {
	var record models.BMIRecord
	err := tx.Where("user_id = ?", userID).Order("bmi_id desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBmiNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// dailyTargetFor resolves the calorie target from the user's latest BMI
// record; progress rows freeze this value at creation.
func dailyTargetFor(tx *gorm.DB, userID uint) (int, error) {
	var record models.BMIRecord
	err := tx.Where("user_id = ?", userID).Order("bmi_id desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrRecommendationNotFound
	}
	if err != nil {
		return 0, err
	}

	var rec models.Recommendation
	err = tx.First(&rec, record.RecommendationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrRecommendationNotFound
	}
	if err != nil {
		return 0, err
	}
	return rec.DailyCalories, nil
}

func resolveDetail(record models.BMIRecord, user *models.User) (*BmiDetail, error) {
	var rec models.Recommendation
	if err := config.DB.First(&rec, record.RecommendationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return &BmiDetail{Record: record, User: *user, Recommendation: rec}, nil
}
