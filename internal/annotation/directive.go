package annotation

import (
	"fmt"
	"strings"

	"tesseract/internal/match"
)

// Prefix starts every html comment directive.
const Prefix = "//html:"

// Directive names understood on type declarations.
const (
	TagName = "tag_name"
	Void    = "void"
	KeyCase = "key_case"
	Text    = "text"
	Attr    = "attr"
	Select  = "select"
)

// Directive names understood on enum constants.
const (
	Value = "value"
	Key   = "key"
)

// TypeDirectives lists the names valid on a type declaration.
var TypeDirectives = []string{TagName, Void, KeyCase, Text, Attr, Select}

// VariantDirectives lists the names valid on an enum constant.
var VariantDirectives = []string{Value, Key}

// Directive is one parsed //html:name[=value] comment line.
type Directive struct {
	Name     string
	Value    string
	HasValue bool
}

// Directives is an ordered list of directives from one declaration.
type Directives []Directive

// ParseDirectives extracts html directives from raw comment lines. Lines that
// are not html directives are ignored.
func ParseDirectives(lines []string) Directives {
	var out Directives

	for _, line := range lines {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), Prefix)
		if !ok {
			continue
		}

		name, value, hasValue := strings.Cut(rest, "=")
		out = append(out, Directive{
			Name:     strings.TrimSpace(name),
			Value:    strings.TrimSpace(value),
			HasValue: hasValue,
		})
	}

	return out
}

// Lookup returns the last directive with the given name.
func (ds Directives) Lookup(name string) (Directive, bool) {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i].Name == name {
			return ds[i], true
		}
	}

	return Directive{}, false
}

// Has reports whether a directive with the given name is present.
func (ds Directives) Has(name string) bool {
	_, ok := ds.Lookup(name)
	return ok
}

// All returns every directive with the given name, in order.
func (ds Directives) All(name string) []Directive {
	var out []Directive

	for _, d := range ds {
		if d.Name == name {
			out = append(out, d)
		}
	}

	return out
}

// UnknownError reports a directive or tag option nobody understands.
type UnknownError struct {
	Name       string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown html annotation %q (did you mean %q?)", e.Name, e.Suggestion)
	}

	return fmt.Sprintf("unknown html annotation %q", e.Name)
}

// CheckKnown fails on the first directive whose name is not in known.
func (ds Directives) CheckKnown(known []string) error {
	for _, d := range ds {
		if !contains(known, d.Name) {
			return &UnknownError{Name: d.Name, Suggestion: match.Suggest(d.Name, known)}
		}
	}

	return nil
}

// SplitAttr splits an attr directive value "key=value" into its parts.
func SplitAttr(d Directive) (key, value string, err error) {
	key, value, ok := strings.Cut(d.Value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("html:%s expects key=value, got %q", d.Name, d.Value)
	}

	return key, value, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
