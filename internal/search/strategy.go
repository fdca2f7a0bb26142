// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "strings"

// MatchType selects how a phrase fragment compares against a column.
// Values other than MatchExact are LIKE based, so an unknown value behaves
// like MatchPartial.
type MatchType string

const (
	MatchPartial MatchType = "partial"
	MatchExact   MatchType = "exact"
	MatchPhrase  MatchType = "phrase"
)

// Strategy is the classified form of a raw search term.
type Strategy struct {
	// CleanTerm is the raw term with one matching outer quote pair removed.
	CleanTerm string
	// Quoted is true when the raw term was wrapped in "..." or '...'.
	Quoted bool
	// Tokens holds the whitespace separated words of CleanTerm.
	Tokens []string
	// Phrase enables one whole-term fragment per expression.
	Phrase bool
	// Words enables one AND group of per-token fragments per expression.
	Words bool
}

// SelectStrategy classifies raw into phrase and/or word matching.
func SelectStrategy(raw string, match MatchType) Strategy {
	quoted := isQuoted(raw)
	clean := raw
	if quoted {
		clean = raw[1 : len(raw)-1]
	}

	tokens := strings.Fields(clean)

	return Strategy{
		CleanTerm: clean,
		Quoted:    quoted,
		Tokens:    tokens,
		Phrase:    quoted || len(tokens) == 1 || match == MatchPhrase,
		Words:     !quoted && len(tokens) > 1,
	}
}

// Empty reports whether the term carries nothing to search for.
func (s Strategy) Empty() bool {
	return len(s.Tokens) == 0
}

// isQuoted requires at least two characters so a lone quote is a literal.
func isQuoted(raw string) bool {
	if len(raw) < 2 {
		return false
	}
	first, last := raw[0], raw[len(raw)-1]
	return first == last && (first == '"' || first == '\'')
}
