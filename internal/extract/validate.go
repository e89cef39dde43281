package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validation failure kinds.
const (
	KindEmpty      = "empty"
	KindFormat     = "format"
	KindLength     = "length"
	KindNotInteger = "not_integer"
	KindRange      = "range"
)

// ValidationError reports why an input field was rejected before any
// navigation takes place.
type ValidationError struct {
	Field   string
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	minYear          = 1950
	maxCaseNumberLen = 20
)

var (
	caseNumberPattern = regexp.MustCompile(`^[A-Za-z0-9/-]+$`)
	caseTypePattern   = regexp.MustCompile(`^[A-Z]{1,10}$`)
)

// ValidateCaseNumber checks case number syntax and returns the trimmed value.
// Allowed characters are letters, digits, / and -; length 1 to 20.
func ValidateCaseNumber(value string) (string, error) {
	if value == "" {
		return "", &ValidationError{Field: "case_number", Kind: KindEmpty, Message: "case number is required"}
	}

	trimmed := strings.TrimSpace(value)
	if !caseNumberPattern.MatchString(trimmed) {
		return "", &ValidationError{Field: "case_number", Kind: KindFormat, Message: "case number can only contain letters, numbers, / and -"}
	}
	if len(trimmed) < 1 || len(trimmed) > maxCaseNumberLen {
		return "", &ValidationError{Field: "case_number", Kind: KindLength, Message: "case number must be between 1 and 20 characters"}
	}

	return trimmed, nil
}

// ValidateYear parses the year and checks it falls between 1950 and the
// next calendar year.
func ValidateYear(value string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: "year", Kind: KindNotInteger, Message: "invalid year format"}
	}

	maxYear := time.Now().Year() + 1
	if year < minYear || year > maxYear {
		return 0, &ValidationError{Field: "year", Kind: KindRange, Message: fmt.Sprintf("year must be between %d and %d", minYear, maxYear)}
	}

	return year, nil
}

// ValidateCaseType upper-cases and trims the case type and checks it is
// 1 to 10 letters (e.g. CS, WP, CRLA).
func ValidateCaseType(value string) (string, error) {
	if value == "" {
		return "", &ValidationError{Field: "case_type", Kind: KindEmpty, Message: "case type is required"}
	}

	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !caseTypePattern.MatchString(normalized) {
		return "", &ValidationError{Field: "case_type", Kind: KindFormat, Message: "invalid case type format"}
	}

	return normalized, nil
}
