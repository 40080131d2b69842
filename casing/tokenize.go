package casing

import (
	"unicode"
	"unicode/utf8"
)

const segmentSep = '_'

// Word is one lexical unit of an identifier.
type Word struct {
	Text  string
	Start int // byte offset in the identifier
}

// Texts returns the text of every word.
func Texts(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}

	return out
}

// Tokenize splits ident into words under the given style. It fails with
// ErrTokenizeMismatch when the style's rule leaves any input unconsumed.
func Tokenize(ident string, style Style) ([]Word, error) {
	if ident == "" {
		return nil, mismatch(ident, style, 0)
	}

	switch style {
	case PascalCase:
		return tokenizePascal(ident)
	case SnakeCase:
		return tokenizeSegments(ident, style, scanLowerRun)
	case TitleSnakeCase:
		return tokenizeSegments(ident, style, scanTitleWord)
	case ScreamingSnakeCase:
		return tokenizeSegments(ident, style, scanUpperRun)
	case LowerCase:
		end := scanLowerRun(ident, 0)
		if end != len(ident) {
			return nil, mismatch(ident, style, end)
		}

		return []Word{{Text: ident, Start: 0}}, nil
	default:
		return nil, mismatch(ident, style, 0)
	}
}

// tokenizePascal consumes one upper-case rune followed by any lower-case
// runes, repeatedly, until the input is exhausted.
func tokenizePascal(ident string) ([]Word, error) {
	var words []Word

	for i := 0; i < len(ident); {
		end := scanTitleWord(ident, i)
		if end == i {
			return nil, mismatch(ident, PascalCase, i)
		}

		words = append(words, Word{Text: ident[i:end], Start: i})
		i = end
	}

	return words, nil
}

// tokenizeSegments splits on '_' and requires scan to consume every segment.
func tokenizeSegments(ident string, style Style, scan func(string, int) int) ([]Word, error) {
	var words []Word

	i := 0
	for {
		end := scan(ident, i)
		if end == i {
			return nil, mismatch(ident, style, i)
		}

		words = append(words, Word{Text: ident[i:end], Start: i})

		if end == len(ident) {
			return words, nil
		}

		if ident[end] != segmentSep {
			return nil, mismatch(ident, style, end)
		}

		i = end + 1
		if i == len(ident) {
			// trailing separator
			return nil, mismatch(ident, style, end)
		}
	}
}

// scanTitleWord matches one upper-case rune followed by zero or more
// lower-case runes starting at i and returns the end offset, or i if
// nothing matched.
func scanTitleWord(s string, i int) int {
	r, size := utf8.DecodeRuneInString(s[i:])
	if size == 0 || !unicode.IsUpper(r) {
		return i
	}

	return scanWhile(s, i+size, unicode.IsLower)
}

func scanLowerRun(s string, i int) int {
	return scanWhile(s, i, unicode.IsLower)
}

func scanUpperRun(s string, i int) int {
	return scanWhile(s, i, unicode.IsUpper)
}

func scanWhile(s string, i int, pred func(rune) bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !pred(r) {
			break
		}

		i += size
	}

	return i
}
