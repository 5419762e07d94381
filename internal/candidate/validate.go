package candidate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	minYears = 0
	maxYears = 60
)

// Permissive on purpose, these only catch obvious typos.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[+]?\d[\d\s().-]{6,}$`)
)

// Messages shown back to the candidate when a value is rejected.
const (
	MsgInvalidEmail  = "That doesn't look like a valid email. Please try again."
	MsgInvalidPhone  = "That phone number seems invalid. Use digits with optional +, spaces, or dashes."
	MsgYearsRange    = "Please enter years of experience between 0 and 60."
	MsgYearsNumeric  = "Please enter a numeric value for years of experience."
	MsgEmptyValue    = "I didn't catch that. Could you answer the question again?"
	msgUnknownFormat = "%q is not a field I can collect."
)

// Value is a normalized, validated field value.
type Value struct {
	Field  Field
	Text   string
	Number *float64
}

// ValidationError is returned when the candidate's input is rejected for a field.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the raw input for the given field and returns its normalized form.
// It has no side effects.
func Validate(field Field, raw string) (Value, error) {
	if !Known(field) {
		return Value{}, &ValidationError{Field: field, Message: fmt.Sprintf(msgUnknownFormat, string(field))}
	}

	text := strings.TrimSpace(raw)

	switch field {
	case Email:
		if !emailPattern.MatchString(text) {
			return Value{}, &ValidationError{Field: field, Message: MsgInvalidEmail}
		}
	case Phone:
		if !phonePattern.MatchString(text) {
			return Value{}, &ValidationError{Field: field, Message: MsgInvalidPhone}
		}
	case YearsExperience:
		years, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(years) {
			return Value{}, &ValidationError{Field: field, Message: MsgYearsNumeric}
		}
		if years < minYears || years > maxYears {
			return Value{}, &ValidationError{Field: field, Message: MsgYearsRange}
		}
		return Value{Field: field, Text: formatYears(years), Number: &years}, nil
	default:
		if text == "" {
			return Value{}, &ValidationError{Field: field, Message: MsgEmptyValue}
		}
	}

	return Value{Field: field, Text: text}, nil
}
