package users

import (
	"net/mail"
	"strings"
	"unicode"
)

const (
	minNameLen     = 1
	maxNameLen     = 50
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 128
)

const passwordSpecials = "!@#$%^&*()-_=+[]{}|;:,.<>?/"

// Validate checks every registration field against account policy and returns
// the first violation found.
func (in RegistrationInput) Validate() error {
	if err := validateName("first_name", in.FirstName); err != nil {
		return err
	}
	if err := validateName("last_name", in.LastName); err != nil {
		return err
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if err := validateUsername(in.Username); err != nil {
		return err
	}
	return validatePassword(in.Password)
}

func validateName(field, v string) error {
	if len(v) < minNameLen {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}
	if len(v) > maxNameLen {
		return &ValidationError{Field: field, Message: "must not exceed 50 characters"}
	}
	return nil
}

func validateEmail(v string) error {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	// mail.ParseAddress accepts bare local domains; require a dotted one.
	at := strings.LastIndex(v, "@")
	if !strings.Contains(v[at+1:], ".") {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

func validateUsername(v string) error {
	if len(v) < minUsernameLen {
		return &ValidationError{Field: "username", Message: "must be at least 3 characters long"}
	}
	if len(v) > maxUsernameLen {
		return &ValidationError{Field: "username", Message: "must not exceed 50 characters"}
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &ValidationError{Field: "username", Message: "must be alphanumeric"}
		}
	}
	return nil
}

func validatePassword(v string) error {
	if len(v) < minPasswordLen {
		return &ValidationError{Field: "password", Message: "must be at least 8 characters long"}
	}
	if len(v) > maxPasswordLen {
		return &ValidationError{Field: "password", Message: "must not exceed 128 characters"}
	}
	var hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, r := range v {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			hasSpecial = true
		}
	}
	switch {
	case !hasDigit:
		return &ValidationError{Field: "password", Message: "must contain at least one digit"}
	case !hasUpper:
		return &ValidationError{Field: "password", Message: "must contain at least one uppercase letter"}
	case !hasLower:
		return &ValidationError{Field: "password", Message: "must contain at least one lowercase letter"}
	case !hasSpecial:
		return &ValidationError{Field: "password", Message: "must contain at least one special character"}
	}
	return nil
}
