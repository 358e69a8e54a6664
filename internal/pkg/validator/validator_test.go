package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRUT(t *testing.T) {
	assert.Equal(t, "12345678-5", NormalizeRUT("12.345.678-5"))
	assert.Equal(t, "12345678-5", NormalizeRUT(" 12345678-5 "))
	assert.Equal(t, "6-K", NormalizeRUT("6-k"))
	assert.Equal(t, "11111111-1", NormalizeRUT("11111111-1"))
}

func TestIsValidRUT_Valid(t *testing.T) {
	validRUTs := []string{
		"11111111-1",
		"12345678-5",
		"12.345.678-5",
		"6-K",
		"6-k",
		"14-0",
	}
	for _, rut := range validRUTs {
		assert.True(t, IsValidRUT(rut), "expected %s to be valid", rut)
	}
}

func TestIsValidRUT_Invalid(t *testing.T) {
	invalidRUTs := []string{
		"",
		"11111111",
		"11111111-2",
		"12345678-K",
		"-1",
		"abc-1",
		"123456789-1",
		"11111111-12",
	}
	for _, rut := range invalidRUTs {
		assert.False(t, IsValidRUT(rut), "expected %s to be invalid", rut)
	}
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-07"))
	assert.True(t, IsValidMonth("1999-01"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-7"))
	assert.False(t, IsValidMonth("2025"))
	assert.False(t, IsValidMonth("julio"))
	assert.False(t, IsValidMonth(""))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "rut", Message: "rut is required"},
		{Field: "address", Message: "address is required"},
	}

	assert.Equal(t, "rut: rut is required; address: address is required", errs.Error())
	assert.Equal(t, map[string]string{
		"rut":     "rut is required",
		"address": "address is required",
	}, errs.ToMap())
}
