package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/Lviers/NutriGabay/controllers"
	"github.com/Lviers/NutriGabay/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.Metrics())
	r.Use(cors.New(corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Account
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// BMI & recommendation
	r.POST("/bmi", controllers.CreateBmi)
	r.GET("/bmi/user/:user_id", controllers.GetBmiByUser)
	r.PUT("/bmi/user/:user_id/update-weight", controllers.UpdateWeight)
	r.POST("/recommendation", controllers.GetRecommendation)

	// Catalog & filtering
	r.GET("/foods", controllers.ListFoods)
	r.POST("/filter-foods/:user_id", controllers.FilterFoods)
	r.GET("/filtered-foods/:user_id", controllers.GetFilteredFoods)

	// Consumption & progress
	r.POST("/record-consumption", controllers.RecordConsumption)
	r.POST("/add-record", controllers.AddRecord)
	r.GET("/records/:user_id", controllers.GetRecords)
	r.POST("/progress/:user_id/update", controllers.UpdateProgress)
	r.GET("/progress/:user_id/today", controllers.GetTodayProgress)
	r.GET("/progress/:user_id/calories-per-day", controllers.GetCaloriesPerDay)
	r.GET("/ws/progress/:user_id", controllers.ProgressSocket)

	// Token-protected convenience routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:8081",
			"http://localhost",
			"http://127.0.0.1",
		}
	}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
