package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is a rejected field value. Handlers surface its message to the
// client verbatim, so messages must not carry internal detail.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StringMinLength checks that value is a string whose trimmed length is at
// least minLength runes. A nil value is accepted only when allowNone is set,
// in which case the returned pointer is nil. On success the original,
// untrimmed string is returned; trimming is only used for the length check.
func StringMinLength(field string, value any, minLength int, allowNone bool) (*string, error) {
	if value == nil {
		if allowNone {
			return nil, nil
		}
		return nil, &Error{Message: field + " cannot be empty"}
	}

	s, ok := value.(string)
	if !ok {
		return nil, &Error{Message: field + " must be a string"}
	}

	if utf8.RuneCountInString(strings.TrimSpace(s)) < minLength {
		return nil, &Error{Message: fmt.Sprintf("%s must be at least %d characters", field, minLength)}
	}

	return &s, nil
}

// Number checks that value is a JSON number. A nil value is accepted only
// when allowNone is set, in which case the returned pointer is nil.
func Number(field string, value any, allowNone bool) (*float64, error) {
	if value == nil {
		if allowNone {
			return nil, nil
		}
		return nil, &Error{Message: field + " cannot be empty"}
	}

	f, ok := value.(float64)
	if !ok {
		return nil, &Error{Message: field + " must be a number"}
	}

	return &f, nil
}
