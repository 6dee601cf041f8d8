package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateDate("2026-03-14T18:30"))
	assert.ErrorIs(t, validateDate(""), errDateRequired)
	assert.ErrorIs(t, validateDate("   "), errDateRequired)
	assert.ErrorIs(t, validateDate("14.03.2026 18:30"), errDateFormat)
	assert.ErrorIs(t, validateDate("2026-03-14"), errDateFormat)
}

func TestValidateScore(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateScore(nil))
	zero := int32(0)
	assert.NoError(t, validateScore(&zero))
	negative := int32(-1)
	assert.ErrorIs(t, validateScore(&negative), errScoreNegative)
}

func TestValidateRating(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateRating(0))
	assert.NoError(t, validateRating(10))
	assert.NoError(t, validateRating(7.5))
	assert.ErrorIs(t, validateRating(-0.5), errRatingRange)
	assert.ErrorIs(t, validateRating(10.5), errRatingRange)
}

func TestValidateItemName(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateItemName("Dres"))
	assert.NoError(t, validateItemName("Čaj"))
	assert.ErrorIs(t, validateItemName(""), errItemNameShort)
	assert.ErrorIs(t, validateItemName("ab"), errItemNameShort)
	assert.ErrorIs(t, validateItemName("  a  "), errItemNameShort)
}

func TestValidatePrice(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validatePrice(0.01))
	assert.NoError(t, validatePrice(25))
	assert.ErrorIs(t, validatePrice(0), errPriceNotPositive)
	assert.ErrorIs(t, validatePrice(-3), errPriceNotPositive)
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateDescription(""))
	assert.NoError(t, validateDescription(strings.Repeat("á", 200)))
	assert.ErrorIs(t, validateDescription(strings.Repeat("á", 201)), errDescriptionTooLong)
}

func TestInvalid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, invalid())
	assert.NoError(t, invalid(nil, nil))

	err := invalid(nil, errDateRequired, errLocationRequired)
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)
	assert.ErrorIs(t, vErr.Fields[0], errDateRequired)
	assert.ErrorIs(t, vErr.Fields[1], errLocationRequired)
}
