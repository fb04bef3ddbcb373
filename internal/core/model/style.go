package model

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle indicates a style name outside the supported set.
var ErrUnknownStyle = errors.New("unknown style")

// Style identifies a visual theme and its matching chime.
type Style string

const (
	StyleClassic    Style = "classic"
	StyleMidCentury Style = "midcentury"
	StyleAtomic     Style = "atomic"
	StyleModern     Style = "modern"
	StyleMinimal    Style = "minimal"
	StyleNeon       Style = "neon"
)

var styleOrder = []Style{
	StyleClassic,
	StyleMidCentury,
	StyleAtomic,
	StyleModern,
	StyleMinimal,
	StyleNeon,
}

var styleNames = map[Style]string{
	StyleClassic:    "Classic",
	StyleMidCentury: "Mid-Century",
	StyleAtomic:     "Atomic Age",
	StyleModern:     "Modern",
	StyleMinimal:    "Minimal",
	StyleNeon:       "Neon",
}

// Styles returns all styles in display order.
func Styles() []Style {
	return append([]Style(nil), styleOrder...)
}

// ParseStyle resolves a style identifier.
func ParseStyle(name string) (Style, error) {
	style := Style(name)
	if _, ok := styleNames[style]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return style, nil
}

// DisplayName returns the human readable style name.
func (style Style) DisplayName() string {
	if name, ok := styleNames[style]; ok {
		return name
	}
	return string(style)
}

// Valid reports whether the style is part of the supported set.
func (style Style) Valid() bool {
	_, ok := styleNames[style]
	return ok
}
