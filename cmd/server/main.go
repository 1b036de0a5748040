package main

import (
	"fmt"
	"log"
	"net/http"

	"tailspin/backend/internal/config"
	"tailspin/backend/internal/database"
	"tailspin/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "tailspin/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Tailspin Toys Crowd Funding API
// @version         1.0
// @description     This is the API for the Tailspin Toys crowdfunding games catalog.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Game routes
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.POST("", handler.CreateGame)
			gameRoutes.PUT("/:id", handler.UpdateGame)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
		}

		// Category routes
		categoryRoutes := api.Group("/categories")
		{
			categoryRoutes.GET("", handler.GetCategories)
			categoryRoutes.GET("/:id", handler.GetCategoryByID)
			categoryRoutes.POST("", handler.CreateCategory)
			categoryRoutes.PUT("/:id", handler.UpdateCategory)
			categoryRoutes.DELETE("/:id", handler.DeleteCategory)
		}

		// Publisher routes
		publisherRoutes := api.Group("/publishers")
		{
			publisherRoutes.GET("", handler.GetPublishers)
			publisherRoutes.GET("/:id", handler.GetPublisherByID)
			publisherRoutes.POST("", handler.CreatePublisher)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
