package handler

import (
	"net/http"
	"strconv"

	"tailspin/backend/internal/database"
	"tailspin/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryResponse defines the serialized shape of a category.
type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	GameCount   int64   `json:"game_count"`
}

func newCategoryResponse(category models.Category, gameCount int64) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		GameCount:   gameCount,
	}
}

// countGamesByCategory counts games per category in a single grouped query,
// so serializing a category list never loads the games collections.
func countGamesByCategory(db *gorm.DB) (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Total      int64
	}
	var rows []row
	err := db.Model(&models.Game{}).
		Select("category_id, COUNT(*) AS total").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}
	return counts, nil
}

func countGamesInCategory(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Model(&models.Game{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

// GetCategories godoc
// @Summary      Get all categories
// @Description  Retrieves every category with its game count.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   CategoryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	counts, err := countGamesByCategory(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category, counts[category.ID]))
	}
	c.JSON(http.StatusOK, response)
}

// GetCategoryByID godoc
// @Summary      Get a single category by ID
// @Description  Retrieves one category with its game count.
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200  {object}  CategoryResponse
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	count, err := countGamesInCategory(database.DB, category.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category, count))
}

// CreateCategory godoc
// @Summary      Create a new category
// @Description  Creates a category after validating its fields.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        input body map[string]interface{} true "Category fields"
// @Success      201  {object}  CategoryResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid fields"
// @Failure      409  {object}  ErrorResponse "Category name already exists"
// @Router       /categories [post]
func CreateCategory(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}

	if value, present := data["name"]; !present || value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: name"})
		return
	}

	category, err := models.NewCategory(data["name"], data["description"])
	if err != nil {
		respondWriteError(c, err)
		return
	}

	if err := database.DB.Create(category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, newCategoryResponse(*category, 0))
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Applies a partial update to a category, re-validating changed fields.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path int                    true "Category ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200  {object}  CategoryResponse
// @Failure      400  {object}  ErrorResponse "Missing or invalid fields"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Failure      409  {object}  ErrorResponse "Category name already exists"
// @Router       /categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	data, ok := bindPayload(c)
	if !ok {
		return
	}

	if value, present := data["name"]; present {
		if err := category.SetName(value); err != nil {
			respondWriteError(c, err)
			return
		}
	}
	if value, present := data["description"]; present {
		if err := category.SetDescription(value); err != nil {
			respondWriteError(c, err)
			return
		}
	}

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists or another error occurred"})
		return
	}

	count, err := countGamesInCategory(database.DB, category.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category, count))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes an existing category. Games referencing it are not cascaded.
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := database.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
