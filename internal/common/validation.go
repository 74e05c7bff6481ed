package common

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ValidatePostText rejects empty or over-limit post text.
func ValidatePostText(text string, maxLength int) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	if utf8.RuneCountInString(text) > maxLength {
		return &ValidationError{Field: "text", Reason: "exceeds maximum length"}
	}

	return nil
}

// ValidateFireAt rejects fire times further in the past than the clock-skew
// tolerance. Slightly-past times are accepted so a form submitted at the
// last second still schedules.
func ValidateFireAt(fireAt, now time.Time, tolerance time.Duration) error {
	if fireAt.IsZero() {
		return &ValidationError{Field: "fire_at", Reason: "is required"}
	}

	if fireAt.Before(now.Add(-tolerance)) {
		return &ValidationError{Field: "fire_at", Reason: "must be in the future"}
	}

	return nil
}
