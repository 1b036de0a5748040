package models

import (
	"time"

	"tailspin/backend/internal/validation"
)

// Publisher represents a game publisher on the platform.
type Publisher struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Games []Game `gorm:"foreignKey:PublisherID"`
}

// NewPublisher builds a Publisher from a decoded payload value, running
// field validation.
func NewPublisher(name any) (*Publisher, error) {
	p := &Publisher{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	return p, nil
}

// SetName validates and assigns the publisher name.
func (p *Publisher) SetName(value any) error {
	name, err := validation.StringMinLength("Publisher name", value, 2, false)
	if err != nil {
		return err
	}
	p.Name = *name
	return nil
}
