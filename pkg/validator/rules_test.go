package validator_test

import (
	"testing"

	"github.com/adhisantoso/gunzkit/pkg/enums"
	"github.com/adhisantoso/gunzkit/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Color string

const (
	ColorRed      Color = "red"
	ColorDarkBlue Color = "dark_blue"
)

var colors = enums.MustString("Color", []enums.Member[Color]{
	{Name: "RED", Value: ColorRed},
	{Name: "DARK_BLUE", Value: ColorDarkBlue},
}, enums.WithAliases(map[string]Color{"dark": ColorDarkBlue}))

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.NotEmpty("name", "gunzkit")))
	assert.Error(t, validator.Apply(validator.NotEmpty("name", "")))
	assert.Error(t, validator.Apply(validator.NotEmpty("name", "   ")))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.OneOf("env", "prod", []string{"dev", "prod"})))

	err := validator.Apply(validator.OneOf("env", "staging", []string{"dev", "prod"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: dev, prod")
}

func TestMemberOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "exact value", input: "red", valid: true},
		{name: "separator variant", input: "DARK-BLUE", valid: true},
		{name: "alias", input: "dark", valid: true},
		{name: "unknown", input: "purple", valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.MemberOf[Color]("color", tt.input, colors))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be a valid Color, one of: red, dark_blue")
			}
		})
	}
}

func TestTypeGuards_DoNotLeakValues(t *testing.T) {
	t.Parallel()

	const secret = "MySecretPassword123!"

	err := validator.Apply(validator.IsInt("age", secret))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret, "validation output must not leak the raw value")
	assert.Contains(t, err.Error(), "got type 'string'")

	err = validator.Apply(validator.IsString("username", 42))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got type 'int'")

	assert.NoError(t, validator.Apply(
		validator.IsString("username", "user"),
		validator.IsInt("age", 30),
	))
}
