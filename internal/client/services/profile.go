package services

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinPhoneLength is the shortest phone number accepted by the profile forms.
const MinPhoneLength = 10

// ValidateProfile checks the profile editor and phone-step fields.
func ValidateProfile(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	return ValidatePhone(phone)
}

func ValidatePhone(phone string) error {
	if utf8.RuneCountInString(strings.TrimSpace(phone)) < MinPhoneLength {
		return fmt.Errorf("phone number must have at least %d characters: %w", MinPhoneLength, ErrInvalidInput)
	}
	return nil
}
