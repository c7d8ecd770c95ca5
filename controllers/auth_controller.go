package controllers

import (
	"errors"
	"net/http"

	"github.com/Lviers/NutriGabay/services"
	"github.com/Lviers/NutriGabay/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Age       int    `json:"age" binding:"required,gt=0"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Username, input.Password, input.Firstname, input.Lastname, input.Age)
	if errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, hasBmi, err := services.AuthenticateUser(input.Username, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not generate token"})
		return
	}

	// The redirect is a UX hint for the mobile client, not access control:
	// users without a BMI record land on the calculator first.
	redirect, message := "HomeScreen", "Login successful, redirecting to HomeScreen"
	if !hasBmi {
		redirect = "BMICalculator"
		message = "Login successful, redirecting to BMICalculator to set up BMI"
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":     user.UserID,
		"redirect_to": redirect,
		"message":     message,
		"token":       token,
	})
}
