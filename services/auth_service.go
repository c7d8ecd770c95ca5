package services

import (
	"errors"

	"github.com/Lviers/NutriGabay/config"
	"github.com/Lviers/NutriGabay/models"
	"github.com/Lviers/NutriGabay/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// RegisterUser stores a new account with a bcrypt hash of the password.
// Username matching is case-sensitive; the unique index decides conflicts.
func RegisterUser(username, password, firstname, lastname string, age int) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:       username,
		HashedPassword: hashed,
		Firstname:      firstname,
		Lastname:       lastname,
		Age:            age,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and reports whether the user already
// has a BMI record on file, which drives the post-login redirect. Unknown
// usernames and wrong passwords return the same error so responses do not
// reveal whether an account exists.
func AuthenticateUser(username, password string) (*models.User, bool, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrInvalidCredentials
		}
		return nil, false, err
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, false, ErrInvalidCredentials
	}

	var bmiCount int64
	if err := config.DB.Model(&models.BMIRecord{}).Where("user_id = ?", user.UserID).Count(&bmiCount).Error; err != nil {
		return nil, false, err
	}
	return &user, bmiCount > 0, nil
}
