package casing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Style
	}{
		{"ExampleValue", PascalCase},
		{"Example", PascalCase},
		{"A", PascalCase},
		{"ID", PascalCase},
		// Every upper-case rune starts a new Pascal word.
		{"EXAMPLE", PascalCase},
		{"Example_Value", TitleSnakeCase},
		{"A_B", TitleSnakeCase},
		{"EXAMPLE_VALUE", ScreamingSnakeCase},
		{"EXAMPLE_VALUE_TWO", ScreamingSnakeCase},
		{"example_value", SnakeCase},
		{"a_b_c", SnakeCase},
		{"example", LowerCase},
		{"x", LowerCase},
		{"Größe", PascalCase},
		{"straße_nummer", SnakeCase},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"exampleValue",
		"Example1",
		"example_1",
		"_example",
		"example_",
		"example__value",
		"Example_value",
		"EXAMPLE_value",
		"kebab-case",
		"with space",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Classify(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoMatch)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, KindNoMatch, cerr.Kind)
			assert.Equal(t, input, cerr.Input)
		})
	}
}

func TestClassify_Stable(t *testing.T) {
	for _, input := range []string{"ExampleValue", "Example_Value", "EXAMPLE_VALUE", "example_value", "example"} {
		first, err := Classify(input)
		require.NoError(t, err)

		for range 10 {
			again, err := Classify(input)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		style    Style
		expected []Word
	}{
		{"ExampleValue", PascalCase, []Word{{"Example", 0}, {"Value", 7}}},
		{"ID", PascalCase, []Word{{"I", 0}, {"D", 1}}},
		{"example_value", SnakeCase, []Word{{"example", 0}, {"value", 8}}},
		{"Example_Value", TitleSnakeCase, []Word{{"Example", 0}, {"Value", 8}}},
		{"EXAMPLE_VALUE", ScreamingSnakeCase, []Word{{"EXAMPLE", 0}, {"VALUE", 8}}},
		{"example", LowerCase, []Word{{"example", 0}}},
		// A single segment is a valid snake tokenization even though it
		// classifies as LowerCase.
		{"example", SnakeCase, []Word{{"example", 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.input, func(t *testing.T) {
			words, err := Tokenize(tt.input, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestTokenize_Mismatch(t *testing.T) {
	tests := []struct {
		input  string
		style  Style
		offset int
	}{
		{"exampleValue", PascalCase, 0},
		{"ExampleValue1", PascalCase, 12},
		{"Example_Value", PascalCase, 7},
		{"example_Value", SnakeCase, 8},
		{"example_", SnakeCase, 7},
		{"EXAMPLE_VALUE", TitleSnakeCase, 1},
		{"Example_Value", ScreamingSnakeCase, 1},
		{"example_value", LowerCase, 7},
		{"", LowerCase, 0},
		{"example", Style(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.input, func(t *testing.T) {
			words, err := Tokenize(tt.input, tt.style)
			require.Error(t, err)
			assert.Nil(t, words)
			assert.ErrorIs(t, err, ErrTokenizeMismatch)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.offset, cerr.Offset)
		})
	}
}

func TestConvert(t *testing.T) {
	words := []Word{{"Example", 0}, {"Value", 7}}

	assert.Equal(t, "ExampleValue", Convert(words, PascalCase))
	assert.Equal(t, "example_value", Convert(words, SnakeCase))
	assert.Equal(t, "Example_Value", Convert(words, TitleSnakeCase))
	assert.Equal(t, "EXAMPLE_VALUE", Convert(words, ScreamingSnakeCase))
	assert.Equal(t, "examplevalue", Convert(words, LowerCase))
	assert.Equal(t, "", Convert(nil, SnakeCase))
}

func TestPascalToSnake(t *testing.T) {
	style, err := Classify("ExampleValue")
	require.NoError(t, err)
	assert.Equal(t, PascalCase, style)

	words, err := Tokenize("ExampleValue", style)
	require.NoError(t, err)
	assert.Equal(t, []string{"Example", "Value"}, Texts(words))

	assert.Equal(t, "example_value", Convert(words, SnakeCase))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"ExampleValue", "AccessKey", "AutoCapitalize", "Lang", "HTML", "X",
		"Example_Value", "Http_Equiv", "A_B",
		"EXAMPLE_VALUE", "MAX_SIZE_HINT",
		"example_value", "http_equiv", "a_b_c",
		"example", "lang",
		"Größe", "ÜBER_ALLES",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			style, err := Classify(s)
			require.NoError(t, err)

			words, err := Tokenize(s, style)
			require.NoError(t, err)
			assert.Equal(t, s, Convert(words, style))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		target   Style
		expected string
	}{
		{"AccessKey", SnakeCase, "access_key"},
		{"AccessKey", LowerCase, "accesskey"},
		{"http_equiv", PascalCase, "HttpEquiv"},
		{"MAX_SIZE", TitleSnakeCase, "Max_Size"},
		{"Example_Value", ScreamingSnakeCase, "EXAMPLE_VALUE"},
		{"lang", PascalCase, "Lang"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.target.String(), func(t *testing.T) {
			got, err := Normalize(tt.input, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Normalize("Heading1", SnakeCase)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected Style
	}{
		{"snake", SnakeCase},
		{"SNAKE", SnakeCase},
		{"pascal", PascalCase},
		{"title_snake", TitleSnakeCase},
		{"screaming_snake", ScreamingSnakeCase},
		{"lower", LowerCase},
		{"PascalCase", PascalCase},
		{"lowercase", LowerCase},
		{" snake ", SnakeCase},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseStyle("kebab")
	assert.Error(t, err)
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "PascalCase", PascalCase.String())
	assert.Equal(t, "TitleSnakeCase", TitleSnakeCase.String())
	assert.Equal(t, "ScreamingSnakeCase", ScreamingSnakeCase.String())
	assert.Equal(t, "SnakeCase", SnakeCase.String())
	assert.Equal(t, "LowerCase", LowerCase.String())
	assert.Equal(t, "Style(0)", Style(0).String())
	assert.Equal(t, 5, StyleTotal)
	assert.Len(t, Styles(), StyleTotal)
}

func TestStyle_ConfigName(t *testing.T) {
	for _, s := range Styles() {
		parsed, err := ParseStyle(s.ConfigName())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}
