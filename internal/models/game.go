package models

import (
	"time"

	"tailspin/backend/internal/validation"
)

// Game is a crowdfunding campaign for a game. Every game belongs to a
// publisher and a category; both are validated for existence before a write
// is accepted.
type Game struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	PublisherID uint   `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	StarRating  *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Publisher Publisher `gorm:"foreignKey:PublisherID"`
	Category  Category  `gorm:"foreignKey:CategoryID"`
}

// SetTitle validates and assigns the game title.
func (g *Game) SetTitle(value any) error {
	title, err := validation.StringMinLength("Title", value, 1, false)
	if err != nil {
		return err
	}
	g.Title = *title
	return nil
}

// SetDescription validates and assigns the game description.
func (g *Game) SetDescription(value any) error {
	description, err := validation.StringMinLength("Description", value, 1, false)
	if err != nil {
		return err
	}
	g.Description = *description
	return nil
}

// SetStarRating validates and assigns the optional star rating. A nil value
// clears the rating.
func (g *Game) SetStarRating(value any) error {
	rating, err := validation.Number("Star rating", value, true)
	if err != nil {
		return err
	}
	g.StarRating = rating
	return nil
}
