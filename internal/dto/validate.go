package dto

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const passwordSpecials = "@$!%*?&"

// NewValidator returns a validator with the custom rules used by the request
// DTOs registered: "fullname" (at least two words, letters and spaces only)
// and "password" (letter + digit + special character).
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if len(strings.Fields(name)) < 2 {
			return false
		}
		for _, r := range name {
			if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
				return false
			}
		}
		return true
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		var hasLetter, hasDigit, hasSpecial bool
		for _, r := range pw {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			case strings.ContainsRune(passwordSpecials, r):
				hasSpecial = true
			}
		}
		return hasLetter && hasDigit && hasSpecial
	})

	return v
}
