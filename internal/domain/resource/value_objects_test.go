//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"resource-form/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorCase struct {
	name  string
	input string
	errIs error
}

func TestName(t *testing.T) {
	cases := []validatorCase{
		{name: "simple room name", input: "Room A"},
		{name: "minimum length", input: "Room1"},
		{name: "maximum length", input: strings.Repeat("a", resource.MaxNameLength)},
		{name: "diacritics", input: "Mötesrum Å"},
		{name: "surrounding whitespace is trimmed", input: "   Room A   "},
		{name: "too short", input: "AB", errIs: resource.ErrNameLength},
		{name: "one below minimum", input: "Room", errIs: resource.ErrNameLength},
		{name: "one above maximum", input: strings.Repeat("a", resource.MaxNameLength+1), errIs: resource.ErrNameLength},
		{name: "underscore", input: "Room_1", errIs: resource.ErrNameCharacters},
		{name: "punctuation", input: "Room A!", errIs: resource.ErrNameCharacters},
		{name: "diacritic outside the allowed set", input: "Café room", errIs: resource.ErrNameCharacters},
		{name: "empty", input: "", errIs: resource.ErrEmptyName},
		{name: "whitespace only", input: "     ", errIs: resource.ErrEmptyName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := resource.NewName(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(c.input), actual.String())
				assert.True(t, resource.IsNameValid(c.input))
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.False(t, resource.IsNameValid(c.input))
		})
	}
}

func TestDescription(t *testing.T) {
	cases := []validatorCase{
		{name: "plain sentence", input: "Nice big room"},
		{name: "allowed punctuation", input: "Big (20 seats), quiet - nice!?"},
		{name: "minimum length", input: strings.Repeat("d", resource.MinDescriptionLength)},
		{name: "maximum length", input: strings.Repeat("d", resource.MaxDescriptionLength)},
		{name: "diacritics", input: "Ljust rum med ÄÖÅ"},
		{name: "too short", input: "short", errIs: resource.ErrDescriptionLength},
		{name: "one above maximum", input: strings.Repeat("d", resource.MaxDescriptionLength+1), errIs: resource.ErrDescriptionLength},
		{name: "disallowed character", input: "Room with a view; nice", errIs: resource.ErrDescriptionCharset},
		{name: "whitespace only", input: " \t ", errIs: resource.ErrEmptyDescription},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := resource.NewDescription(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.True(t, resource.IsDescriptionValid(c.input))
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.False(t, resource.IsDescriptionValid(c.input))
		})
	}
}

func TestFieldState(t *testing.T) {
	assert.Equal(t, resource.FieldNeutral, resource.NameState(""))
	assert.Equal(t, resource.FieldNeutral, resource.NameState("    "))
	assert.Equal(t, resource.FieldValid, resource.NameState("Room A"))
	assert.Equal(t, resource.FieldInvalid, resource.NameState("AB"))

	assert.Equal(t, resource.FieldNeutral, resource.DescriptionState(""))
	assert.Equal(t, resource.FieldValid, resource.DescriptionState("Nice big room"))
	assert.Equal(t, resource.FieldInvalid, resource.DescriptionState("short"))
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"":         0,
		"abc":      0,
		"12.5":     12.5,
		" 40 ":     40,
		"12abc":    12,
		"12.":      12,
		".5":       0.5,
		"-3":       -3,
		"1e2":      100,
		"1e999":    0,
		"Infinity": 0,
		"NaN":      0,
	}
	for raw, expected := range cases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, expected, resource.ParsePrice(raw))
		})
	}
}

func TestParsePriceUnit(t *testing.T) {
	assert.Equal(t, resource.PriceUnitHour, resource.ParsePriceUnit(""))
	assert.Equal(t, resource.PriceUnitDay, resource.ParsePriceUnit("day"))
	assert.Equal(t, resource.PriceUnitHour, resource.ParsePriceUnit("fortnight"))
}

func TestNewDraft(t *testing.T) {
	d := resource.NewDraft("  Room A ", " Nice big room ", true, "abc", "")

	assert.Equal(t, resource.Draft{
		Name:        "Room A",
		Description: "Nice big room",
		Available:   true,
		Price:       0,
		PriceUnit:   resource.PriceUnitHour,
	}, d)
}
