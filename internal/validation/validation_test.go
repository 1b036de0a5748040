package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMinLength_ValidValue(t *testing.T) {
	value, err := StringMinLength("Category name", "Board games", 2, false)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "Board games", *value)
}

func TestStringMinLength_ReturnsOriginalUntrimmed(t *testing.T) {
	value, err := StringMinLength("Category name", "  padded  ", 2, false)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "  padded  ", *value, "trimming is only for the length check")
}

func TestStringMinLength_NilNotAllowed(t *testing.T) {
	_, err := StringMinLength("Category name", nil, 2, false)
	require.Error(t, err)
	assert.Equal(t, "Category name cannot be empty", err.Error())
}

func TestStringMinLength_NilAllowed(t *testing.T) {
	value, err := StringMinLength("Description", nil, 10, true)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStringMinLength_NonString(t *testing.T) {
	for _, bad := range []any{42.0, true, []any{"x"}, map[string]any{}} {
		_, err := StringMinLength("Description", bad, 10, true)
		require.Error(t, err)
		assert.Equal(t, "Description must be a string", err.Error())
	}
}

func TestStringMinLength_TooShort(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
	}{
		{"single char", "a", 2},
		{"whitespace only", "   ", 2},
		{"padded single char", "  a  ", 2},
		{"short description", "too short", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StringMinLength("Field", tt.value, tt.min, false)
			require.Error(t, err)
			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Message, "must be at least")
		})
	}
}

func TestStringMinLength_CountsRunesNotBytes(t *testing.T) {
	// Two runes, six bytes.
	_, err := StringMinLength("Field", "日本", 2, false)
	assert.NoError(t, err)
}

func TestStringMinLength_ErrorMessageFormat(t *testing.T) {
	_, err := StringMinLength("Description", "short", 10, true)
	require.Error(t, err)
	assert.Equal(t, "Description must be at least 10 characters", err.Error())
}

func TestNumber_ValidValue(t *testing.T) {
	value, err := Number("Star rating", 4.5, true)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 4.5, *value)
}

func TestNumber_NilAllowed(t *testing.T) {
	value, err := Number("Star rating", nil, true)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestNumber_NilNotAllowed(t *testing.T) {
	_, err := Number("Star rating", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Star rating cannot be empty", err.Error())
}

func TestNumber_NonNumber(t *testing.T) {
	_, err := Number("Star rating", "4.5", true)
	require.Error(t, err)
	assert.Equal(t, "Star rating must be a number", err.Error())
}
