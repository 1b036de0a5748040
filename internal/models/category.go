package models

import (
	"time"

	"tailspin/backend/internal/validation"
)

// Category groups games by genre (e.g. "Board games", "Card games").
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// One category has many games. Games are referenced, not owned:
	// deleting a category does not cascade to its games.
	Games []Game `gorm:"foreignKey:CategoryID"`
}

// NewCategory builds a Category from decoded payload values, running field
// validation. The same setters are used at update time so a field can never
// be assigned an invalid value.
func NewCategory(name, description any) (*Category, error) {
	c := &Category{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetDescription(description); err != nil {
		return nil, err
	}
	return c, nil
}

// SetName validates and assigns the category name. Names are required and
// must be at least 2 characters after trimming.
func (c *Category) SetName(value any) error {
	name, err := validation.StringMinLength("Category name", value, 2, false)
	if err != nil {
		return err
	}
	c.Name = *name
	return nil
}

// SetDescription validates and assigns the description. Descriptions are
// optional but must be at least 10 characters after trimming when present.
func (c *Category) SetDescription(value any) error {
	description, err := validation.StringMinLength("Description", value, 10, true)
	if err != nil {
		return err
	}
	c.Description = description
	return nil
}
