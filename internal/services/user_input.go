package services

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxUserNameLength  = 50
	MaxUserEmailLength = 100
	// bcrypt ignores input past 72 bytes.
	MaxUserPasswordBytes = 72
)

var (
	ErrUserFieldsRequired = errors.New("first name, last name, email and password are required")
	ErrUserFieldTooLong   = errors.New("user field is too long")
)

type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// NormalizeUserInput trims the text fields and checks presence and column
// limits. The password is kept verbatim.
func NormalizeUserInput(input UserInput) (UserInput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || strings.TrimSpace(input.Password) == "" {
		return input, ErrUserFieldsRequired
	}
	if utf8.RuneCountInString(input.FirstName) > MaxUserNameLength ||
		utf8.RuneCountInString(input.LastName) > MaxUserNameLength ||
		utf8.RuneCountInString(input.Email) > MaxUserEmailLength ||
		len(input.Password) > MaxUserPasswordBytes {
		return input, ErrUserFieldTooLong
	}
	return input, nil
}
