package casing

// rule is one entry of the classification table. Snake variants must split
// into at least two segments; a single segment is left to the later rules.
type rule struct {
	style        Style
	multiSegment bool
}

// rules is scanned in order and the first match wins.
var rules = []rule{
	{style: PascalCase},
	{style: TitleSnakeCase, multiSegment: true},
	{style: ScreamingSnakeCase, multiSegment: true},
	{style: SnakeCase, multiSegment: true},
	{style: LowerCase},
}

// Classify returns the style of ident. Digits and any rune other than
// letters and '_' are accommodated by no style, so such identifiers fail
// with ErrNoMatch, as does the empty string.
func Classify(ident string) (Style, error) {
	if ident == "" {
		return 0, noMatch(ident)
	}

	for _, r := range rules {
		words, err := Tokenize(ident, r.style)
		if err != nil {
			continue
		}

		if r.multiSegment && len(words) < 2 {
			continue
		}

		return r.style, nil
	}

	return 0, noMatch(ident)
}

// Matches reports whether ident is classified as style.
func Matches(ident string, style Style) bool {
	got, err := Classify(ident)
	return err == nil && got == style
}
