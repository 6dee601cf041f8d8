package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"clubmanager/internal/domain"
)

var (
	errDateRequired     = errors.New("date is required")
	errDateFormat       = errors.New("date must look like 2006-01-02T15:04")
	errLocationRequired = errors.New("location is required")
	errOpponentRequired = errors.New("opponent is required")
	errScoreNegative    = errors.New("score must not be negative")
	errRatingRange      = errors.New("rating must be between 0 and 10")
	errUsernameRequired = errors.New("username is required")
	errPasswordRequired = errors.New("password is required")

	errItemNameShort      = errors.New("name must be at least 3 characters")
	errPriceNotPositive   = errors.New("price must be a positive number")
	errDescriptionTooLong = errors.New("description must be at most 200 characters")
)

// ValidationError carries field-level messages for form re-rendering.
// Anything else coming out of a service is a storage failure.
type ValidationError struct {
	Fields []error
}

func (e *ValidationError) Error() string {
	return errors.Join(e.Fields...).Error()
}

func (e *ValidationError) Unwrap() []error {
	return e.Fields
}

func invalid(fields ...error) error {
	var nonNil []error
	for _, err := range fields {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return &ValidationError{Fields: nonNil}
}

func validateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return errDateRequired
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return errDateFormat
	}
	return nil
}

func validateLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errLocationRequired
	}
	return nil
}

func validateScore(score *int32) error {
	if score != nil && *score < 0 {
		return errScoreNegative
	}
	return nil
}

func validateRating(rating float64) error {
	if rating < 0 || rating > 10 {
		return errRatingRange
	}
	return nil
}

func validateItemName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 3 {
		return errItemNameShort
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return errPriceNotPositive
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > 200 {
		return errDescriptionTooLong
	}
	return nil
}
