package search

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderPattern = regexp.MustCompile(`:s\d+`)

func TestSelectStrategy(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		match  MatchType
		clean  string
		quoted bool
		tokens []string
		phrase bool
		words  bool
	}{
		{name: "single word", raw: "acme", match: MatchPartial, clean: "acme", tokens: []string{"acme"}, phrase: true},
		{name: "multi word", raw: "acme corp", match: MatchPartial, clean: "acme corp", tokens: []string{"acme", "corp"}, words: true},
		{name: "multi word phrase mode", raw: "acme corp", match: MatchPhrase, clean: "acme corp", tokens: []string{"acme", "corp"}, phrase: true, words: true},
		{name: "double quoted", raw: `"acme corp"`, match: MatchPartial, clean: "acme corp", quoted: true, tokens: []string{"acme", "corp"}, phrase: true},
		{name: "single quoted", raw: `'acme corp'`, match: MatchPartial, clean: "acme corp", quoted: true, tokens: []string{"acme", "corp"}, phrase: true},
		{name: "mismatched quotes", raw: `"acme'`, match: MatchPartial, clean: `"acme'`, tokens: []string{`"acme'`}, phrase: true},
		{name: "lone quote", raw: `"`, match: MatchPartial, clean: `"`, tokens: []string{`"`}, phrase: true},
		{name: "collapsed spaces", raw: "  a   b  ", match: MatchPartial, clean: "  a   b  ", tokens: []string{"a", "b"}, words: true},
		{name: "blank", raw: "   ", match: MatchPartial, clean: "   ", tokens: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := SelectStrategy(tc.raw, tc.match)
			assert.Equal(t, tc.clean, s.CleanTerm)
			assert.Equal(t, tc.quoted, s.Quoted)
			assert.ElementsMatch(t, tc.tokens, s.Tokens)
			assert.Equal(t, tc.phrase, s.Phrase)
			assert.Equal(t, tc.words, s.Words)
		})
	}
}

func TestCompile_BlankTerm(t *testing.T) {
	for _, term := range []string{"", " ", "\t\n", `"  "`} {
		for _, match := range []MatchType{MatchPartial, MatchExact, MatchPhrase, "bogus"} {
			f := FactoryVocabulary.Compile(term, match, DefaultFactoryFields)
			assert.True(t, f.IsEmpty(), "term %q match %q", term, match)
			assert.Empty(t, f.Params)
		}
	}
}

func TestCompile_NumericID(t *testing.T) {
	t.Run("single number", func(t *testing.T) {
		f := FactoryVocabulary.Compile("42", MatchPartial, []string{"factories_id"})
		require.Equal(t, "(factory.pk_factories_id = :s0)", f.Where)
		require.Equal(t, map[string]any{"s0": int64(42)}, f.Params)
		assert.NotContains(t, f.Where, "LIKE")
	})

	t.Run("decimal", func(t *testing.T) {
		f := FactoryVocabulary.Compile("4.5", MatchPartial, []string{"factories_id"})
		require.Equal(t, map[string]any{"s0": 4.5}, f.Params)
	})

	t.Run("exponent is integral", func(t *testing.T) {
		f := FactoryVocabulary.Compile("1e3", MatchPartial, []string{"factories_id"})
		require.Equal(t, map[string]any{"s0": int64(1000)}, f.Params)
	})

	for _, term := range []string{"abc", "0x1F", "1,000", "42abc", "Inf", "NaN", "1e999", "42 43"} {
		t.Run("rejects "+term, func(t *testing.T) {
			f := FactoryVocabulary.Compile(term, MatchPartial, []string{"factories_id"})
			assert.True(t, f.IsEmpty())
			assert.Empty(t, f.Params)
		})
	}
}

func TestCompile_IDAndName(t *testing.T) {
	f := FactoryVocabulary.Compile("7", MatchPartial, []string{"factories_name", "factories_id"})

	require.Equal(t, "(factory.pk_factories_id = :s0 OR factory.name LIKE :s1)", f.Where)
	require.Equal(t, map[string]any{"s0": int64(7), "s1": "%7%"}, f.Params)
}

func TestCompile_ContactName(t *testing.T) {
	f := FactoryVocabulary.Compile("John", MatchPartial, []string{"contact_name"})

	require.Equal(t, 3, strings.Count(f.Where, " LIKE "))
	require.Equal(t, 2, strings.Count(f.Where, " OR "))
	assert.Contains(t, f.Where, "contact.first_name LIKE :s1")
	assert.Contains(t, f.Where, "contact.last_name LIKE :s2")
	require.Len(t, f.Params, 3)
	for _, v := range f.Params {
		assert.Equal(t, "%John%", v)
	}
}

func TestCompile_QuotedPhrase(t *testing.T) {
	f := FactoryVocabulary.Compile(`"acme corp"`, MatchPartial, []string{"factories_name"})

	require.Equal(t, "(factory.name LIKE :s0)", f.Where)
	require.Equal(t, map[string]any{"s0": "%acme corp%"}, f.Params)
}

func TestCompile_WordSearch(t *testing.T) {
	f := FactoryVocabulary.Compile("acme corp", MatchPartial, []string{"factories_name", "factories_email"})

	require.Equal(t,
		"((factory.name LIKE :s0 AND factory.name LIKE :s1) OR (factory.email LIKE :s2 AND factory.email LIKE :s3))",
		f.Where)
	require.Equal(t, map[string]any{
		"s0": "%acme%", "s1": "%corp%",
		"s2": "%acme%", "s3": "%corp%",
	}, f.Params)
	assert.NotContains(t, f.Params, "%acme corp%")
}

func TestCompile_PhraseModeMultiWord(t *testing.T) {
	f := FactoryVocabulary.Compile("acme corp", MatchPhrase, []string{"factories_name"})

	require.Equal(t, "(factory.name LIKE :s0 OR (factory.name LIKE :s1 AND factory.name LIKE :s2))", f.Where)
	require.Equal(t, "%acme corp%", f.Params["s0"])
}

func TestCompile_Exact(t *testing.T) {
	f := FactoryVocabulary.Compile("active", MatchExact, []string{"factories_status"})

	require.Equal(t, "(factory.status = :s0)", f.Where)
	require.Equal(t, map[string]any{"s0": "active"}, f.Params)
}

func TestCompile_UnknownMatchTypeIsPartial(t *testing.T) {
	partial := FactoryVocabulary.Compile("acme", MatchPartial, []string{"factories_name"})
	bogus := FactoryVocabulary.Compile("acme", "fuzzy", []string{"factories_name"})

	assert.Equal(t, partial, bogus)
}

func TestCompile_UnknownFieldsFailOpen(t *testing.T) {
	f := FactoryVocabulary.Compile("acme", MatchPartial, []string{"nope", "also_nope"})
	assert.True(t, f.IsEmpty())

	f = FactoryVocabulary.Compile("acme", MatchPartial, nil)
	assert.True(t, f.IsEmpty())
}

func TestCompile_DeclarationOrderAndDedup(t *testing.T) {
	a := FactoryVocabulary.Compile("acme", MatchPartial, []string{"location_type", "factories_name", "factories_name"})
	b := FactoryVocabulary.Compile("acme", MatchPartial, []string{"factories_name", "location_type"})

	require.Equal(t, a, b)
	require.Equal(t, "(factory.name LIKE :s0 OR locationType.name LIKE :s1)", a.Where)
}

func TestCompile_Idempotent(t *testing.T) {
	a := FactoryVocabulary.Compile("john smith", MatchPartial, DefaultFactoryFields)
	b := FactoryVocabulary.Compile("john smith", MatchPartial, DefaultFactoryFields)

	assert.Equal(t, a, b)
}

func TestCompile_ParamsMatchPlaceholders(t *testing.T) {
	terms := []string{"john", "john smith", `"john smith"`, "42", "a b c"}
	for _, term := range terms {
		for _, match := range []MatchType{MatchPartial, MatchExact, MatchPhrase} {
			f := FactoryVocabulary.Compile(term, match, DefaultFactoryFields)
			require.False(t, f.IsEmpty())
			placeholders := placeholderPattern.FindAllString(f.Where, -1)
			require.Len(t, f.Params, len(placeholders), "term %q match %q", term, match)
			for _, p := range placeholders {
				assert.Contains(t, f.Params, strings.TrimPrefix(p, ":"))
			}
		}
	}
}

func TestVocabulary_Lookup(t *testing.T) {
	spec, ok := FactoryVocabulary.Lookup("contact_name")
	require.True(t, ok)
	assert.Len(t, spec.Expressions, 3)

	_, ok = FactoryVocabulary.Lookup("missing")
	assert.False(t, ok)

	assert.Len(t, DefaultFactoryFields, 12)
	assert.Equal(t, "factories_id", DefaultFactoryFields[0])
}
