package enums_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/adhisantoso/gunzkit/pkg/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Color string

const (
	ColorRed        Color = "red"
	ColorBlue       Color = "blue"
	ColorDarkBlue   Color = "dark_blue"
	ColorLightGreen Color = "light green"
)

var colors = enums.MustString("Color", []enums.Member[Color]{
	{Name: "RED", Value: ColorRed},
	{Name: "BLUE", Value: ColorBlue},
	{Name: "DARK_BLUE", Value: ColorDarkBlue},
	{Name: "LIGHT_GREEN", Value: ColorLightGreen},
}, enums.WithAliases(map[string]Color{
	"dark":    ColorDarkBlue,
	"CRIMSON": ColorRed,
}))

func TestStringEnum_FromFuzzyString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "exact value", input: "red", want: ColorRed},
		{name: "uppercase value", input: "RED", want: ColorRed},
		{name: "mixed case value", input: "Blue", want: ColorBlue},
		{name: "exact name", input: "DARK_BLUE", want: ColorDarkBlue},
		{name: "lowercase name", input: "dark_blue", want: ColorDarkBlue},
		{name: "dash separator", input: "dark-blue", want: ColorDarkBlue},
		{name: "space separator", input: "dark blue", want: ColorDarkBlue},
		{name: "value with space as dash", input: "light-green", want: ColorLightGreen},
		{name: "value with space as underscore", input: "light_green", want: ColorLightGreen},
		{name: "uppercase value with space", input: "LIGHT GREEN", want: ColorLightGreen},
		{name: "separator run", input: "dark--blue", want: ColorDarkBlue},
		{name: "alias", input: "dark", want: ColorDarkBlue},
		{name: "alias uppercase", input: "DARK", want: ColorDarkBlue},
		{name: "alias declared uppercase", input: "crimson", want: ColorRed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := colors.FromFuzzyString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringEnum_FromFuzzyString_Invalid(t *testing.T) {
	t.Parallel()

	_, err := colors.FromFuzzyString("purple")
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrInvalidValue)
	assert.True(t, enums.IsInvalidValueError(err))
	assert.EqualError(t, err,
		"'purple' is not a valid Color. Please use one of: 'red', 'blue', 'dark_blue', 'light green'")

	var invalid *enums.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "purple", invalid.Input)
	assert.Equal(t, "Color", invalid.TypeName)
	assert.Equal(t, []string{"red", "blue", "dark_blue", "light green"}, invalid.Choices)
}

func TestStringEnum_InputGuard(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("a", enums.MaxInputLength)
	_, err := colors.FromFuzzyString(atLimit)
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrInvalidValue, "input at the limit must fail as a normal miss")
	assert.NotErrorIs(t, err, enums.ErrInputTooLong)

	overLimit := strings.Repeat("a", enums.MaxInputLength+1)
	_, err = colors.FromFuzzyString(overLimit)
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrInputTooLong)
	assert.True(t, enums.IsInputTooLongError(err))
	assert.NotErrorIs(t, err, enums.ErrInvalidValue)

	// Oversized aliases are rejected too: the guard runs before alias lookup.
	_, err = colors.FromFuzzyString("dark" + strings.Repeat(" ", enums.MaxInputLength))
	assert.ErrorIs(t, err, enums.ErrInputTooLong)

	_, ok := colors.GetOrNone(overLimit)
	assert.False(t, ok)
}

func TestStringEnum_InputGuard_CountsCharacters(t *testing.T) {
	t.Parallel()

	// 1024 two-byte characters stay within the limit even at 2048 bytes.
	atLimit := strings.Repeat("é", enums.MaxInputLength)
	_, err := colors.FromFuzzyString(atLimit)
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrInvalidValue)
	assert.NotErrorIs(t, err, enums.ErrInputTooLong)

	_, err = colors.FromFuzzyString(strings.Repeat("é", enums.MaxInputLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrInputTooLong)

	var tooLong *enums.InputTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, enums.MaxInputLength+1, tooLong.Length, "reported length is in characters, not bytes")
}

func TestStringEnum_BrokenAlias(t *testing.T) {
	t.Parallel()

	broken := enums.MustString("Palette", []enums.Member[Color]{
		{Name: "RED", Value: ColorRed},
	}, enums.WithAliases(map[string]Color{"dead": Color("dark_teal")}))

	// Valid members keep resolving; the defect stays latent.
	got, err := broken.FromFuzzyString("red")
	require.NoError(t, err)
	assert.Equal(t, ColorRed, got)

	_, err = broken.FromFuzzyString("dead")
	require.Error(t, err)
	assert.ErrorIs(t, err, enums.ErrBrokenAlias)
	assert.EqualError(t, err, "alias target 'dark_teal' is not a valid member value for Palette")

	var brokenErr *enums.BrokenAliasError
	require.ErrorAs(t, err, &brokenErr)
	assert.Equal(t, "dead", brokenErr.Alias)
	assert.Equal(t, "dark_teal", brokenErr.Target)
}

func TestStringEnum_Introspection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"RED", "BLUE", "DARK_BLUE", "LIGHT_GREEN"}, colors.Names())
	assert.Equal(t, []Color{ColorRed, ColorBlue, ColorDarkBlue, ColorLightGreen}, colors.Values())
	assert.Equal(t, []enums.Member[Color]{
		{Name: "RED", Value: ColorRed},
		{Name: "BLUE", Value: ColorBlue},
		{Name: "DARK_BLUE", Value: ColorDarkBlue},
		{Name: "LIGHT_GREEN", Value: ColorLightGreen},
	}, colors.Items())
	assert.Equal(t, colors.Values(), colors.Choices())
	assert.Equal(t, "Color", colors.TypeName())
}

func TestStringEnum_GetOrNone(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  any
		want   Color
		wantOK bool
	}{
		{name: "exact value string", input: "red", want: ColorRed, wantOK: true},
		{name: "typed value", input: ColorRed, want: ColorRed, wantOK: true},
		{name: "fuzzy string", input: "DARK-BLUE", want: ColorDarkBlue, wantOK: true},
		{name: "alias", input: "dark", want: ColorDarkBlue, wantOK: true},
		{name: "typed but fuzzy", input: Color("Light Green"), want: ColorLightGreen, wantOK: true},
		{name: "no match", input: "purple", wantOK: false},
		{name: "integer input", input: 123, wantOK: false},
		{name: "nil input", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := colors.GetOrNone(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewString_DefinitionErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty type name", func(t *testing.T) {
		t.Parallel()
		_, err := enums.NewString("", []enums.Member[Color]{{Name: "RED", Value: ColorRed}})
		assert.ErrorIs(t, err, enums.ErrEmptyTypeName)
	})

	t.Run("no members", func(t *testing.T) {
		t.Parallel()
		_, err := enums.NewString[Color]("Color", nil)
		assert.ErrorIs(t, err, enums.ErrNoMembers)
	})

	t.Run("duplicate value", func(t *testing.T) {
		t.Parallel()
		_, err := enums.NewString("Color", []enums.Member[Color]{
			{Name: "RED", Value: ColorRed},
			{Name: "ROUGE", Value: ColorRed},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, enums.ErrDuplicateMember)

		var dup *enums.DuplicateMemberError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "ROUGE", dup.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		_, err := enums.NewString("Color", []enums.Member[Color]{
			{Name: "RED", Value: ColorRed},
			{Name: "RED", Value: ColorBlue},
		})
		assert.ErrorIs(t, err, enums.ErrDuplicateMember)
	})

	t.Run("must panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			enums.MustString[Color]("Color", nil)
		})
	})
}

func TestStringEnum_FirstWins(t *testing.T) {
	t.Parallel()

	// Member B's lowercase name collides with member A's normalized value;
	// the member declared first keeps the key.
	e := enums.MustString("Clash", []enums.Member[Color]{
		{Name: "A", Value: Color("b")},
		{Name: "B", Value: Color("x")},
	})

	got, err := e.FromFuzzyString("b")
	require.NoError(t, err)
	assert.Equal(t, Color("b"), got)

	// The shadowed member stays reachable through its own value.
	got, err = e.FromFuzzyString("x")
	require.NoError(t, err)
	assert.Equal(t, Color("x"), got)
}

func TestStringEnum_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	// Fresh type per test so the first fuzzy lookup races for real.
	e := enums.MustString("Color", []enums.Member[Color]{
		{Name: "RED", Value: ColorRed},
		{Name: "DARK_BLUE", Value: ColorDarkBlue},
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.FromFuzzyString("DARK-BLUE")
			assert.NoError(t, err)
			assert.Equal(t, ColorDarkBlue, got)
		}()
	}
	wg.Wait()
}
