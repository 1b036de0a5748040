package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"tailspin/backend/internal/database"
	"tailspin/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter wires the API against a fresh in-memory SQLite database
// and returns a router registered with the same routes as the server.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Publisher{}, &models.Category{}, &models.Game{}))
	database.DB = db

	router := gin.New()
	api := router.Group("/api")

	gameRoutes := api.Group("/games")
	gameRoutes.GET("", GetGames)
	gameRoutes.GET("/:id", GetGameByID)
	gameRoutes.POST("", CreateGame)
	gameRoutes.PUT("/:id", UpdateGame)
	gameRoutes.DELETE("/:id", DeleteGame)

	categoryRoutes := api.Group("/categories")
	categoryRoutes.GET("", GetCategories)
	categoryRoutes.GET("/:id", GetCategoryByID)
	categoryRoutes.POST("", CreateCategory)
	categoryRoutes.PUT("/:id", UpdateCategory)
	categoryRoutes.DELETE("/:id", DeleteCategory)

	publisherRoutes := api.Group("/publishers")
	publisherRoutes.GET("", GetPublishers)
	publisherRoutes.GET("/:id", GetPublisherByID)
	publisherRoutes.POST("", CreatePublisher)

	return router
}

// performRequest sends a JSON request to the router. A nil body sends no
// request body at all.
func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performRawRequest sends a raw (possibly malformed) body.
func performRawRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder, out any) error {
	t.Helper()
	return json.Unmarshal(w.Body.Bytes(), out)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedPublisher(t *testing.T, name string) models.Publisher {
	t.Helper()
	publisher := models.Publisher{Name: name}
	require.NoError(t, database.DB.Create(&publisher).Error)
	return publisher
}

func seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, database.DB.Create(&category).Error)
	return category
}

func seedGame(t *testing.T, title string, publisherID, categoryID uint) models.Game {
	t.Helper()
	game := models.Game{
		Title:       title,
		Description: "A crowdfunded " + title,
		PublisherID: publisherID,
		CategoryID:  categoryID,
	}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
