package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "must be a valid year"},
	}

	assert.Equal(t, "month: must be between 1 and 12; year: must be a valid year", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "basic_salary", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	assert.Equal(t, map[string]string{"basic_salary": "must be non-negative"}, m)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190b7a2-37c1-7d4e-89ab-b2fda1a1c0de"))
	assert.True(t, IsValidUUID("C56A4180-65AA-42EC-A945-5FD21DEC0538"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2025))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(21000))
}
