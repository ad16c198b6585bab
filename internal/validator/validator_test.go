package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email      string `json:"email" validate:"required,email"`
	DateFrom   string `json:"date_from" validate:"required,datestr"`
	BabyGender string `json:"baby_gender" validate:"required,babygender"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:      "parent@example.com",
		DateFrom:   "2026-09-07",
		BabyGender: "unknown",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:      "not-an-email",
		DateFrom:   "2026-09-07",
		BabyGender: "male",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_DateStr(t *testing.T) {
	v := New()

	cases := []struct {
		value string
		valid bool
	}{
		{"2026-01-31", true},
		{"2026-02-30", false},
		{"31-01-2026", false},
		{"2026/01/31", false},
		{"", false},
	}

	for _, tc := range cases {
		err := v.Validate(&sampleRequest{
			Email:      "parent@example.com",
			DateFrom:   tc.value,
			BabyGender: "female",
		})
		if tc.valid {
			assert.NoError(t, err, "value %q should pass", tc.value)
		} else {
			assert.Error(t, err, "value %q should fail", tc.value)
		}
	}
}

func TestValidate_BabyGender(t *testing.T) {
	v := New()

	for _, valid := range []string{"male", "female", "unknown"} {
		err := v.Validate(&sampleRequest{
			Email:      "parent@example.com",
			DateFrom:   "2026-09-07",
			BabyGender: valid,
		})
		assert.NoError(t, err, "gender %q should pass", valid)
	}

	err := v.Validate(&sampleRequest{
		Email:      "parent@example.com",
		DateFrom:   "2026-09-07",
		BabyGender: "dragon",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: male, female, unknown", vErr.Errors["baby_gender"])
}
