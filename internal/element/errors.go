package element

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against a *MetadataError.
var (
	ErrMissing          = errors.New("required annotation missing")
	ErrUnsupportedShape = errors.New("unsupported type shape")
	ErrDuplicateKey     = errors.New("duplicate attribute key")
	ErrUnsupportedType  = errors.New("unsupported field type")
	ErrConflict         = errors.New("conflicting annotations")
	ErrUnknown          = errors.New("unknown annotation")
)

// Kind categorizes a metadata failure.
type Kind int

const (
	KindMissing Kind = iota + 1
	KindUnsupportedShape
	KindDuplicateKey
	KindUnsupportedType
	KindConflict
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindUnsupportedShape:
		return "unsupported_shape"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindUnsupportedType:
		return "unsupported_type"
	case KindConflict:
		return "conflict"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissing:
		return ErrMissing
	case KindUnsupportedShape:
		return ErrUnsupportedShape
	case KindDuplicateKey:
		return ErrDuplicateKey
	case KindUnsupportedType:
		return ErrUnsupportedType
	case KindConflict:
		return ErrConflict
	case KindUnknown:
		return ErrUnknown
	default:
		return nil
	}
}

// MetadataError reports why a type's annotations could not be turned into a
// Definition.
type MetadataError struct {
	Kind Kind
	// Type is the qualified name of the type being extracted.
	Type string
	// Subject is what the error is about: the missing annotation or variant,
	// the actual shape, the duplicated key, the offending field or the
	// declaration holding an unknown annotation.
	Subject string
	// Err is the underlying cause, if any.
	Err error
}

func (e *MetadataError) Error() string {
	var msg string

	switch e.Kind {
	case KindMissing:
		msg = fmt.Sprintf("%s: required html annotation missing", e.Subject)
	case KindUnsupportedShape:
		msg = fmt.Sprintf("unsupported shape %s", e.Subject)
	case KindDuplicateKey:
		msg = fmt.Sprintf("duplicate attribute key %q", e.Subject)
	case KindUnsupportedType:
		msg = fmt.Sprintf("field %s has a type that cannot be rendered", e.Subject)
	case KindConflict:
		msg = fmt.Sprintf("conflicting annotations: %s", e.Subject)
	case KindUnknown:
		msg = "in " + e.Subject
	default:
		msg = e.Subject
	}

	if e.Type != "" {
		msg = e.Type + ": " + msg
	}

	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

// Is matches the sentinel of the error's kind.
func (e *MetadataError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Unwrap returns the underlying cause.
func (e *MetadataError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, typ, subject string, cause error) *MetadataError {
	return &MetadataError{Kind: kind, Type: typ, Subject: subject, Err: cause}
}

// Code returns the kind name, used as the diagnostic code.
func (e *MetadataError) Code() string {
	return e.Kind.String()
}
