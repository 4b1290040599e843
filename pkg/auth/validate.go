package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 50
)

// ValidationError reports a single violated field constraint. The message is
// meant for the end user and names the rule that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ValidationError{Field: "email", Message: "email must be a valid email address"}
	}
	return nil
}

func validatePassword(password string) error {
	switch n := utf8.RuneCountInString(password); {
	case n < minPasswordLen:
		return ValidationError{Field: "password", Message: "password must be at least 6 characters long"}
	case n > maxPasswordLen:
		return ValidationError{Field: "password", Message: "password must not be longer than 50 characters"}
	}
	return nil
}
