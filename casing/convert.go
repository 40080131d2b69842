package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convert joins words in the target style. It is the inverse of Tokenize:
// Convert(Tokenize(s, S), S) == s whenever s is classified as S.
func Convert(words []Word, target Style) string {
	var sb strings.Builder

	delim := target.Delimiter()
	for i, w := range words {
		if i > 0 {
			sb.WriteString(delim)
		}

		switch target {
		case PascalCase, TitleSnakeCase:
			sb.WriteString(capitalize(w.Text))
		case ScreamingSnakeCase:
			sb.WriteString(strings.ToUpper(w.Text))
		default:
			sb.WriteString(strings.ToLower(w.Text))
		}
	}

	return sb.String()
}

// Normalize classifies ident, tokenizes it and converts it into target.
func Normalize(ident string, target Style) (string, error) {
	style, err := Classify(ident)
	if err != nil {
		return "", err
	}

	words, err := Tokenize(ident, style)
	if err != nil {
		return "", err
	}

	return Convert(words, target), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
