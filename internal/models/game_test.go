package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_SetTitle(t *testing.T) {
	var game Game

	require.NoError(t, game.SetTitle("X"))
	assert.Equal(t, "X", game.Title)

	require.Error(t, game.SetTitle(nil))
	require.Error(t, game.SetTitle(7.0))
	assert.Equal(t, "X", game.Title, "failed assignment must not mutate")
}

func TestGame_SetDescription(t *testing.T) {
	var game Game

	require.NoError(t, game.SetDescription("A long-awaited sequel"))
	assert.Equal(t, "A long-awaited sequel", game.Description)

	err := game.SetDescription(nil)
	require.Error(t, err)
	assert.Equal(t, "Description cannot be empty", err.Error())
}

func TestGame_SetStarRating(t *testing.T) {
	var game Game

	require.NoError(t, game.SetStarRating(4.5))
	require.NotNil(t, game.StarRating)
	assert.Equal(t, 4.5, *game.StarRating)

	// nil clears an existing rating
	require.NoError(t, game.SetStarRating(nil))
	assert.Nil(t, game.StarRating)

	err := game.SetStarRating("five")
	require.Error(t, err)
	assert.Equal(t, "Star rating must be a number", err.Error())
}

func TestPublisher_SetName(t *testing.T) {
	var publisher Publisher

	require.NoError(t, publisher.SetName("Tailspin Toys"))
	assert.Equal(t, "Tailspin Toys", publisher.Name)

	err := publisher.SetName("x")
	require.Error(t, err)
	assert.Equal(t, "Publisher name must be at least 2 characters", err.Error())
}
