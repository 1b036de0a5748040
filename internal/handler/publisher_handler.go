package handler

import (
	"net/http"
	"strconv"

	"tailspin/backend/internal/database"
	"tailspin/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PublisherResponse defines the serialized shape of a publisher.
type PublisherResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newPublisherResponse(publisher models.Publisher) PublisherResponse {
	return PublisherResponse{
		ID:   publisher.ID,
		Name: publisher.Name,
	}
}

// GetPublishers godoc
// @Summary      Get all publishers
// @Description  Retrieves every publisher.
// @Tags         publishers
// @Produce      json
// @Success      200  {array}   PublisherResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /publishers [get]
func GetPublishers(c *gin.Context) {
	var publishers []models.Publisher
	if err := database.DB.Find(&publishers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]PublisherResponse, 0, len(publishers))
	for _, publisher := range publishers {
		response = append(response, newPublisherResponse(publisher))
	}
	c.JSON(http.StatusOK, response)
}

// GetPublisherByID godoc
// @Summary      Get a single publisher by ID
// @Description  Retrieves one publisher.
// @Tags         publishers
// @Produce      json
// @Param        id path int true "Publisher ID"
// @Success      200  {object}  PublisherResponse
// @Failure      404  {object}  ErrorResponse "Publisher not found"
// @Router       /publishers/{id} [get]
func GetPublisherByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var publisher models.Publisher
	if err := database.DB.First(&publisher, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publisher not found"})
		return
	}

	c.JSON(http.StatusOK, newPublisherResponse(publisher))
}

// CreatePublisher godoc
// @Summary      Create a new publisher
// @Description  Creates a publisher after validating its fields.
// @Tags         publishers
// @Accept       json
// @Produce      json
// @Param        input body map[string]interface{} true "Publisher fields"
// @Success      201  {object}  PublisherResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid fields"
// @Failure      409  {object}  ErrorResponse "Publisher name already exists"
// @Router       /publishers [post]
func CreatePublisher(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}

	if value, present := data["name"]; !present || value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: name"})
		return
	}

	publisher, err := models.NewPublisher(data["name"])
	if err != nil {
		respondWriteError(c, err)
		return
	}

	if err := database.DB.Create(publisher).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Publisher already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, newPublisherResponse(*publisher))
}
