package routes

import (
	"os"
	"path/filepath"

	"backend/controllers"
	"backend/middlewares"
	"backend/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		// Daily servings and the archive pipeline
		servings := api.Group("/servings")
		{
			servings.GET("/today", controllers.GetTodaysServings)
			servings.POST("", controllers.AddServing)
			servings.DELETE("/:id", controllers.DeleteServing)
			servings.POST("/archive", controllers.ArchiveServings)
			servings.POST("/reset", controllers.ResetServings)
		}

		// Donation listings
		food := api.Group("/food")
		{
			food.GET("", controllers.GetAllFood)
			food.GET("/available", controllers.GetAvailableFood)
			food.GET("/reserved", controllers.GetReservedFood)
			food.POST("", middlewares.RequireRole(models.RoleRestaurant), controllers.AddFoodItem)
			food.POST("/reserve/:id", middlewares.RequireRole(models.RoleNGO), controllers.ReserveFood)
			food.POST("/compact", controllers.CompactFood)
			food.DELETE("/:id", controllers.DeleteFoodItem)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("", middlewares.RequireRole(models.RoleNGO), controllers.SaveCart)
			cart.DELETE("", controllers.ClearCart)
		}

		requests := api.Group("/requests")
		{
			requests.GET("", controllers.GetRequests)
			requests.PATCH("/:id", controllers.UpdateRequestStatus)
		}

		events := api.Group("/events")
		{
			events.GET("", controllers.GetUpcomingEvents)
			events.POST("", controllers.AddEvent)
			events.POST("/compact", controllers.CompactEvents)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		api.GET("/stats", controllers.GetStats)
		api.GET("/predicted", controllers.GetPredicted)
		api.GET("/predicted/weekly", controllers.GetPredictedWeekly)
		api.POST("/model/recalibrate", controllers.Recalibrate)

		api.POST("/feedback", controllers.AddFeedback)
		api.GET("/feedback", controllers.GetFeedback)

		partnerships := api.Group("/partnerships")
		{
			partnerships.GET("", controllers.GetPartnerships)
			partnerships.POST("", middlewares.RequireRole(models.RoleNGO), controllers.CreatePartnership)
			partnerships.POST("/:id/decision", middlewares.RequireRole(models.RoleRestaurant), controllers.DecidePartnership)
		}

		api.POST("/devices", controllers.RegisterDevice)
		api.GET("/ws", controllers.MarketFeed)
		api.POST("/chat", controllers.Chat)
	}

	// SPA: serve built assets, fall back to index.html for client routes.
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "./public"
	}
	r.Static("/public", publicDir)
	r.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(publicDir, "index.html"))
	})

	return r
}
