package annotation

import (
	"reflect"
	"strings"

	"tesseract/internal/match"
)

// TagKey is the struct tag key read on fields.
const TagKey = "html"

// Role is what a struct field contributes to its element.
type Role int

const (
	RoleNone  Role = iota // no html tag
	RoleSkip              // html:"-"
	RoleAttr              // html:"attr"
	RoleChild             // html:"child"
)

// String returns the tag spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleSkip:
		return "-"
	case RoleAttr:
		return "attr"
	case RoleChild:
		return "child"
	default:
		return "none"
	}
}

var roles = []string{"attr", "child", "-"}

var tagOptions = []string{Key, Value}

// FieldTag is a parsed html struct tag.
type FieldTag struct {
	Role Role
	// Key overrides the attribute key derived from the field name.
	Key string
	// Value, when HasValue, is a literal used instead of the field's value.
	Value    string
	HasValue bool
}

// ParseFieldTag reads the html key of a struct tag. A value= option takes the
// rest of the tag, commas included, so it must come last.
func ParseFieldTag(tag reflect.StructTag) (FieldTag, error) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return FieldTag{Role: RoleNone}, nil
	}

	role, opts, more := strings.Cut(raw, ",")
	role = strings.TrimSpace(role)

	var ft FieldTag
	switch role {
	case "-":
		return FieldTag{Role: RoleSkip}, nil
	case "attr":
		ft.Role = RoleAttr
	case "child":
		ft.Role = RoleChild
	default:
		return FieldTag{}, &UnknownError{Name: role, Suggestion: match.Suggest(role, roles)}
	}

	for more {
		rest := opts

		var opt string
		opt, opts, more = strings.Cut(rest, ",")
		name, value, _ := strings.Cut(strings.TrimSpace(opt), "=")

		switch name {
		case Key:
			ft.Key = strings.TrimSpace(value)
		case Value:
			_, ft.Value, _ = strings.Cut(rest, "=")
			ft.HasValue = true
			more = false
		default:
			return FieldTag{}, &UnknownError{Name: name, Suggestion: match.Suggest(name, tagOptions)}
		}
	}

	return ft, nil
}
