package casing

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Style -output=style_string.go

// Style is an identifier naming convention.
type Style int

const (
	_ Style = iota // zero value is not a style

	// The declaration order is the classification precedence.
	PascalCase
	TitleSnakeCase
	ScreamingSnakeCase
	SnakeCase
	LowerCase

	// StyleTotal is the number of defined styles.
	StyleTotal = int(iota) - 1
)

// Styles returns every style in classification precedence order.
func Styles() []Style {
	return []Style{PascalCase, TitleSnakeCase, ScreamingSnakeCase, SnakeCase, LowerCase}
}

// IsValid reports whether s is one of the defined styles.
func (s Style) IsValid() bool {
	return s >= PascalCase && s <= LowerCase
}

// Delimiter returns the separator placed between words in s.
func (s Style) Delimiter() string {
	switch s {
	case SnakeCase, TitleSnakeCase, ScreamingSnakeCase:
		return "_"
	default:
		return ""
	}
}

var styleNames = map[string]Style{
	"pascal":          PascalCase,
	"snake":           SnakeCase,
	"title_snake":     TitleSnakeCase,
	"screaming_snake": ScreamingSnakeCase,
	"lower":           LowerCase,
}

// ParseStyle parses a style name. It accepts the short config names
// (pascal, snake, title_snake, screaming_snake, lower) and the String form
// (PascalCase, SnakeCase, ...), case-insensitively.
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := styleNames[key]; ok {
		return s, nil
	}

	for _, s := range Styles() {
		if strings.EqualFold(s.String(), key) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown casing style %q", name)
}

// ConfigName returns the short name accepted by ParseStyle.
func (s Style) ConfigName() string {
	for name, st := range styleNames {
		if st == s {
			return name
		}
	}

	return ""
}
