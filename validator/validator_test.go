package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/dhu2022-dev/mental-health-checkin/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMood(t *testing.T) {
	for mood := 1; mood <= 10; mood++ {
		assert.NoError(t, ValidateMood(mood))
	}
	for _, mood := range []int{0, 11, -3, 100} {
		err := ValidateMood(mood)
		require.Error(t, err, "mood %d", mood)
		assert.Equal(t, errors.ErrCodeInvalidMood, errors.GetAppError(err).Code)
	}
}

func TestValidatePeriodType(t *testing.T) {
	for _, p := range []string{"", "monthly", "quarterly", "yearly"} {
		assert.NoError(t, ValidatePeriodType(p))
	}
	err := ValidatePeriodType("weekly")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidPeriod, errors.GetAppError(err).Code)
}

func TestValidateDateRange(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateRange(nil, nil))
	assert.NoError(t, ValidateDateRange(&earlier, nil))
	assert.NoError(t, ValidateDateRange(nil, &later))
	assert.NoError(t, ValidateDateRange(&earlier, &later))
	assert.NoError(t, ValidateDateRange(&earlier, &earlier))

	err := ValidateDateRange(&later, &earlier)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateSearchQuery(t *testing.T) {
	assert.NoError(t, ValidateSearchQuery("coffee"))

	err := ValidateSearchQuery("")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	err = ValidateSearchQuery(strings.Repeat("x", 201))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}
