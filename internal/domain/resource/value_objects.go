package resource

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength        = 5
	MaxNameLength        = 30
	MinDescriptionLength = 10
	MaxDescriptionLength = 50
)

var (
	namePattern        = regexp.MustCompile(`^[a-zA-Z0-9äöåÄÖÅ ]+$`)
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9äöåÄÖÅ .,!?()-]+$`)

	// leading part of the input that a lenient float parser would accept
	pricePrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if n := utf8.RuneCountInString(t); n < MinNameLength || n > MaxNameLength {
		return Name{}, ErrNameLength
	}
	if !namePattern.MatchString(t) {
		return Name{}, ErrNameCharacters
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	if n := utf8.RuneCountInString(t); n < MinDescriptionLength || n > MaxDescriptionLength {
		return Description{}, ErrDescriptionLength
	}
	if !descriptionPattern.MatchString(t) {
		return Description{}, ErrDescriptionCharset
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }

// ParsePrice reads the numeric prefix of raw. Anything that does not start with a
// finite number yields 0.
func ParsePrice(raw string) float64 {
	m := pricePrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// ParsePriceUnit falls back to hour for empty or unknown units.
func ParsePriceUnit(raw string) PriceUnit {
	u := PriceUnit(strings.TrimSpace(raw))
	for _, known := range PriceUnits {
		if u == known {
			return u
		}
	}
	return PriceUnitHour
}
