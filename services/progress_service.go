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
	ErrNoProgressToday   = errors.New("no progress found for today")
	ErrNoProgressInRange = errors.New("no progress records found for the specified date range")
)

// Shown when a user somehow has progress but no recommendation anymore.
const defaultDailyCalories = 2000

// applyCalories is the atomic upsert-and-increment at the heart of daily
// tracking. The increment is a single UPDATE, so concurrent consumption
// events for the same user/day cannot lose updates. The insert path only
// races on the first event of a day; the unique (user_id, date) index catches
// the loser, which then retries the increment.
func applyCalories(tx *gorm.DB, userID uint, filteredID *uint, calories int) (*models.Progress, error) {
	day := utils.Today()

	for attempt := 0; attempt < 2; attempt++ {
		res := tx.Model(&models.Progress{}).
			Where("user_id = ? AND date = ?", userID, day).
			UpdateColumn("total_calories", gorm.Expr("total_calories + ?", calories))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			var progress models.Progress
			err := tx.Where("user_id = ? AND date = ?", userID, day).First(&progress).Error
			return &progress, err
		}

		// First event of the day: freeze the target from the user's
		// current recommendation.
		target, err := dailyTargetFor(tx, userID)
		if err != nil {
			return nil, err
		}
		progress := models.Progress{
			UserID:        userID,
			FilteredID:    filteredID,
			TotalCalories: calories,
			Date:          day,
			DailyCalories: target,
		}
		err = tx.Create(&progress).Error
		if err == nil {
			return &progress, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Another request created today's row between our UPDATE and
		// INSERT; loop back and increment it.
	}
	return nil, errors.New("daily progress upsert did not settle")
}

// UpdateProgress is the snapshot variant of the unified consumption
// operation, kept as its own entrypoint for the progress endpoint. It records
// the eating event and increments today's total in one transaction.
func UpdateProgress(userID, filteredID uint) (*models.Progress, error) {
	_, progress, err := ConsumeFromSnapshot(userID, filteredID)
	return progress, err
}

// TodayProgress returns today's row plus the display target resolved from the
// user's CURRENT recommendation, which may differ from the frozen one stored
// on the row.
func TodayProgress(userID uint) (*models.Progress, int, error) {
	var progress models.Progress
	err := config.DB.Where("user_id = ? AND date = ?", userID, utils.Today()).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, ErrNoProgressToday
	}
	if err != nil {
		return nil, 0, err
	}

	target, err := dailyTargetFor(config.DB, userID)
	if errors.Is(err, ErrRecommendationNotFound) {
		target = defaultDailyCalories
	} else if err != nil {
		return nil, 0, err
	}
	return &progress, target, nil
}

// ProgressRange returns rows with date in [start, end] inclusive, each
// carrying its own frozen target.
func ProgressRange(userID uint, start, end time.Time) ([]models.Progress, error) {
	var rows []models.Progress
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoProgressInRange
	}
	return rows, nil
}
