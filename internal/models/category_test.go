package models

import (
	"testing"

	"tailspin/backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory_Valid(t *testing.T) {
	category, err := NewCategory("Board games", "Strategy and family board games")
	require.NoError(t, err)
	assert.Equal(t, "Board games", category.Name)
	require.NotNil(t, category.Description)
	assert.Equal(t, "Strategy and family board games", *category.Description)
}

func TestNewCategory_DescriptionOptional(t *testing.T) {
	category, err := NewCategory("Board games", nil)
	require.NoError(t, err)
	assert.Nil(t, category.Description)
}

func TestNewCategory_NameTooShort(t *testing.T) {
	for _, bad := range []any{"a", "   ", " a "} {
		_, err := NewCategory(bad, nil)
		require.Error(t, err, "name %q should be rejected", bad)
		var vErr *validation.Error
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestNewCategory_NameMissing(t *testing.T) {
	_, err := NewCategory(nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Category name cannot be empty", err.Error())
}

func TestNewCategory_DescriptionNotAString(t *testing.T) {
	_, err := NewCategory("Board games", 12.0)
	require.Error(t, err)
	assert.Equal(t, "Description must be a string", err.Error())
}

func TestNewCategory_DescriptionTooShort(t *testing.T) {
	_, err := NewCategory("Board games", "too short")
	require.Error(t, err)
	assert.Equal(t, "Description must be at least 10 characters", err.Error())
}

func TestCategory_SetName_RejectsInvalidWithoutMutating(t *testing.T) {
	category, err := NewCategory("Board games", nil)
	require.NoError(t, err)

	err = category.SetName("x")
	require.Error(t, err)
	assert.Equal(t, "Board games", category.Name, "failed assignment must not mutate")
}

func TestCategory_SetDescription_ClearsOnNil(t *testing.T) {
	category, err := NewCategory("Board games", "A long enough description")
	require.NoError(t, err)

	require.NoError(t, category.SetDescription(nil))
	assert.Nil(t, category.Description)
}
