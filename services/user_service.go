package services

import (
	"errors"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
