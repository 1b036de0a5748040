package handler

import (
	"net/http"
	"strconv"

	"tailspin/backend/internal/database"
	"tailspin/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// GameRefResponse is the embedded shape of a game's publisher or category.
type GameRefResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GameResponse defines the serialized shape of a game, including the fields
// of its joined publisher and category.
type GameResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StarRating  *float64        `json:"star_rating"`
	PublisherID uint            `json:"publisher_id"`
	CategoryID  uint            `json:"category_id"`
	Publisher   GameRefResponse `json:"publisher"`
	Category    GameRefResponse `json:"category"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		StarRating:  game.StarRating,
		PublisherID: game.PublisherID,
		CategoryID:  game.CategoryID,
		Publisher:   GameRefResponse{ID: game.Publisher.ID, Name: game.Publisher.Name},
		Category:    GameRefResponse{ID: game.Category.ID, Name: game.Category.Name},
	}
}

// endregion

// gameRequiredFields is checked in order; the first missing field wins.
var gameRequiredFields = []string{"title", "description", "publisher_id", "category_id"}

// gameBaseQuery returns the canonical game read query: Game left-outer-joined
// to Publisher and Category. Outer joins keep a game row visible even when a
// reference is dangling. Every game read path goes through this query so all
// responses share one shape.
func gameBaseQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Game{}).Joins("Publisher").Joins("Category")
}

// findGameByID fetches a single fully hydrated game row.
func findGameByID(db *gorm.DB, id uint) (*models.Game, error) {
	var game models.Game
	if err := gameBaseQuery(db).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// GetGames godoc
// @Summary      Get all games
// @Description  Retrieves every game with its publisher and category.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	var games []models.Game
	if err := gameBaseQuery(database.DB).Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its publisher and category.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	game, err := findGameByID(database.DB, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game after validating its publisher and category references.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body map[string]interface{} true "Game fields"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid fields"
// @Failure      404  {object}  ErrorResponse "Publisher or category not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}

	for _, field := range gameRequiredFields {
		if value, present := data[field]; !present || value == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + field})
			return
		}
	}

	var game models.Game
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		// Publisher is checked before category; when both are invalid the
		// publisher failure is the one reported.
		if err := checkPublisherExists(tx, data["publisher_id"]); err != nil {
			return err
		}
		if err := checkCategoryExists(tx, data["category_id"]); err != nil {
			return err
		}

		if err := game.SetTitle(data["title"]); err != nil {
			return err
		}
		if err := game.SetDescription(data["description"]); err != nil {
			return err
		}
		if err := game.SetStarRating(data["star_rating"]); err != nil {
			return err
		}
		game.PublisherID, _ = foreignKeyID(data["publisher_id"])
		game.CategoryID, _ = foreignKeyID(data["category_id"])

		return tx.Omit(clause.Associations).Create(&game).Error
	})
	if txErr != nil {
		respondWriteError(c, txErr)
		return
	}

	created, err := findGameByID(database.DB, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*created))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Applies a partial update to a game, re-validating any changed references.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path int                    true "Game ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid fields"
// @Failure      404  {object}  ErrorResponse "Game, publisher or category not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	data, ok := bindPayload(c)
	if !ok {
		return
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if value, present := data["title"]; present {
			if err := game.SetTitle(value); err != nil {
				return err
			}
		}
		if value, present := data["description"]; present {
			if err := game.SetDescription(value); err != nil {
				return err
			}
		}
		if value, present := data["star_rating"]; present {
			if err := game.SetStarRating(value); err != nil {
				return err
			}
		}
		if value, present := data["publisher_id"]; present {
			if err := checkPublisherExists(tx, value); err != nil {
				return err
			}
			game.PublisherID, _ = foreignKeyID(value)
		}
		if value, present := data["category_id"]; present {
			if err := checkCategoryExists(tx, value); err != nil {
				return err
			}
			game.CategoryID, _ = foreignKeyID(value)
		}

		return tx.Omit(clause.Associations).Save(&game).Error
	})
	if txErr != nil {
		respondWriteError(c, txErr)
		return
	}

	updated, err := findGameByID(database.DB, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*updated))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes an existing game.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := database.DB.Delete(&models.Game{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}
