// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Filter is a compiled WHERE predicate with named (:name) parameters.
// An empty Where means no filter: every row matches.
type Filter struct {
	Where  string
	Params map[string]any
}

// IsEmpty reports whether the filter leaves the query unrestricted.
func (f Filter) IsEmpty() bool {
	return f.Where == ""
}

func emptyFilter() Filter {
	return Filter{Params: map[string]any{}}
}

// compiler holds the state of a single Compile call.
type compiler struct {
	strategy  Strategy
	match     MatchType
	fragments []string
	params    map[string]any
	next      int
}

func (c *compiler) bind(value any) string {
	name := fmt.Sprintf("s%d", c.next)
	c.next++
	c.params[name] = value
	return ":" + name
}

// Compile builds an OR filter over the requested fields of the vocabulary.
// Unknown field names are ignored. A blank term, or a term for which no
// field produced a fragment, yields an empty filter.
func (v Vocabulary) Compile(term string, match MatchType, fields []string) Filter {
	strategy := SelectStrategy(term, match)
	if strategy.Empty() {
		return emptyFilter()
	}

	requested := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		requested[name] = struct{}{}
	}

	c := &compiler{
		strategy: strategy,
		match:    match,
		params:   map[string]any{},
	}

	for _, spec := range v {
		if _, ok := requested[string(spec.Field)]; !ok {
			continue
		}
		if spec.Numeric {
			c.numeric(spec)
			continue
		}
		for _, expr := range spec.Expressions {
			c.text(expr)
		}
	}

	if len(c.fragments) == 0 {
		return emptyFilter()
	}

	return Filter{
		Where:  "(" + strings.Join(c.fragments, " OR ") + ")",
		Params: c.params,
	}
}

func (c *compiler) numeric(spec FieldSpec) {
	if len(c.strategy.Tokens) != 1 {
		return
	}
	value, ok := parseNumber(c.strategy.Tokens[0])
	if !ok {
		return
	}
	for _, expr := range spec.Expressions {
		c.fragments = append(c.fragments, fmt.Sprintf("%s = %s", expr, c.bind(value)))
	}
}

func (c *compiler) text(expr string) {
	s := c.strategy

	if s.Phrase {
		if c.match == MatchExact {
			c.fragments = append(c.fragments, fmt.Sprintf("%s = %s", expr, c.bind(s.CleanTerm)))
		} else {
			c.fragments = append(c.fragments, fmt.Sprintf("%s LIKE %s", expr, c.bind("%"+s.CleanTerm+"%")))
		}
	}

	if s.Words {
		words := make([]string, 0, len(s.Tokens))
		for _, token := range s.Tokens {
			words = append(words, fmt.Sprintf("%s LIKE %s", expr, c.bind("%"+token+"%")))
		}
		c.fragments = append(c.fragments, "("+strings.Join(words, " AND ")+")")
	}
}

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber accepts plain base-10 literals only. Integral values are
// returned as int64 so they compare cleanly against integer keys.
func parseNumber(token string) (any, bool) {
	token = strings.TrimSpace(token)
	if !decimalPattern.MatchString(token) {
		return nil, false
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return int64(f), true
	}
	return f, true
}
