package validator

import (
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
)

// ValidateMood checks the mood range
func ValidateMood(mood int) error {
	if mood < constants.MoodMin || mood > constants.MoodMax {
		return errors.NewAppError(errors.ErrCodeInvalidMood, "Mood must be between 1 and 10", nil)
	}
	return nil
}

// ValidatePeriodType checks an insight period type
func ValidatePeriodType(periodType string) error {
	switch periodType {
	case "", constants.PeriodMonthly, constants.PeriodQuarterly, constants.PeriodYearly:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidPeriod,
		"Period type must be monthly, quarterly or yearly", nil)
}

// ValidateDateRange checks that from is not after to
func ValidateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return errors.NewAppError(errors.ErrCodeValidation, "'from' must not be after 'to'", nil)
	}
	return nil
}

// ValidateSearchQuery checks the fuzzy search input
func ValidateSearchQuery(q string) error {
	if q == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Search query must not be empty", nil)
	}
	if len(q) > 200 {
		return errors.NewAppError(errors.ErrCodeValidation, "Search query too long", nil)
	}
	return nil
}
