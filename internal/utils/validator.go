package utils

import (
	"github.com/go-playground/validator/v10"
	"strings"
)

var Validate *validator.Validate

const passwordSpecials = "@$!%*#?&"

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()
	if err := v.RegisterValidation("password", validatePassword); err != nil {
		panic(err)
	}
	Validate = v
}

// validatePassword requires at least 8 characters containing a letter,
// a digit and one of @$!%*#?&. Other characters are rejected.
func validatePassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var letter, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return letter && digit && special
}
