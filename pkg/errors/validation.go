package errors

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length bounds for names, descriptions, technologies and diagram metadata.
const (
	MinTextLength = 1
	MaxTextLength = 100
)

// ValidateText checks that value holds between MinTextLength and MaxTextLength
// characters. Length is counted in runes, so multi-byte names are not
// penalised for their encoding.
func ValidateText(field, value string) error {
	n := utf8.RuneCountInString(value)
	if n < MinTextLength {
		return fieldError(field, "%s must not be empty", field)
	}
	if n > MaxTextLength {
		return fieldError(field, "%s too long (%d characters, max %d)", field, n, MaxTextLength)
	}
	return nil
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// ValidateHexColor checks that value is a lowercase six-digit hex color such
// as "#0055a4". Shorthand ("#fff") and uppercase digits are rejected.
func ValidateHexColor(field, value string) error {
	if !hexColorRegex.MatchString(value) {
		return fieldError(field, "%s must be a 6-digit lowercase hex color, got %q", field, value)
	}
	return nil
}

// uuidV4Regex matches the canonical textual form of a version 4, RFC 4122
// variant UUID.
var uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// ValidateUUIDv4 checks that value is a version 4 UUID in canonical form.
// Hex digits may be upper or lower case.
func ValidateUUIDv4(field, value string) error {
	if value == "" {
		return &Error{Code: ErrCodeConfiguration, Field: field, Message: field + " is required"}
	}
	if !uuidV4Regex.MatchString(strings.ToLower(value)) {
		return &Error{Code: ErrCodeConfiguration, Field: field, Message: field + " must be a UUID v4"}
	}
	return nil
}

func fieldError(field, format string, args ...any) *Error {
	e := New(ErrCodeValidation, format, args...)
	e.Field = field
	return e
}
