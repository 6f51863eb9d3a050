package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+62 812 3456 7890"))
	assert.True(t, IsValidPhoneNumber("0812-3456-7890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("phone number"))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2024-06-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = IsValidDate("15-06-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestParsePeriod(t *testing.T) {
	parsed, err := ParsePeriod("2024-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParsePeriod("June 2024")
	assert.Error(t, err)
	_, err = ParsePeriod("2024-6")
	assert.Error(t, err)
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2024-06", FormatPeriod(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", FormatPeriod(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "name", Message: "cannot be empty"},
	}

	assert.Equal(t, "email: is required; name: cannot be empty", errs.Error())
	assert.Equal(t, map[string]string{
		"email": "is required",
		"name":  "cannot be empty",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("b", []string{"a", "b", "c"}))
	assert.False(t, IsInSlice("z", []string{"a", "b", "c"}))
	assert.False(t, IsInSlice("a", nil))
}
