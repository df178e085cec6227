// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"warbler/internal/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Prevent unreasonable inputs (and bcrypt's 72-byte truncation surprises)
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}

	hasLetter := false
	for _, r := range password {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}

	if !digitRegex.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	// Only allow alphanumeric, underscores, and hyphens
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidateMessageText checks that message text is non-empty after trimming
// and within the column bound.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message text is required")
	}

	if len(text) > models.MaxMessageLength {
		return fmt.Errorf("message text must not exceed %d characters", models.MaxMessageLength)
	}

	return nil
}
