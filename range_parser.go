// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intrange

import (
	"slices"
	"strconv"
	"strings"
)

// Parse expands a range string into the set of integers it denotes,
// returned as a sorted slice with duplicates removed.
//
// Supported syntax:
//   - Single integers: "5", "-5", "+5"
//   - Inclusive spans: "5-8", and descending "8-5" (normalized to
//     ascending)
//   - Delimited lists of either: "1,3,5-8,10-11,15"
//
// Examples:
//
//	Parse("1,3,5-8,10-11,15")           // [1 3 5 6 7 8 10 11 15]
//	Parse("5,3,1-2,3")                  // [1 2 3 5]
//	Parse("")                           // []
//	Parse("1;3;5..8", WithDelimiter(";"), WithRangeDelimiter(".."))
//
// The whole input is trimmed of surrounding whitespace once; individual
// tokens are not, so "1, 2" fails. A range delimiter only separates a
// span when it appears past the first character of the token: "-5" is
// the integer negative five, "-5--1" is the span from -5 to -1. Any
// token that does not reduce to one or two base-10 integers surfaces as
// a *ParseError naming the token.
func Parse(s string, opts ...Option) ([]int, error) {
	spans, err := parseSpans(s, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	var values []int
	for _, sp := range spans {
		for v := sp.Low; ; v++ {
			values = append(values, v)
			if v == sp.High {
				break
			}
		}
	}

	slices.Sort(values)
	return slices.Compact(values), nil
}

// parseSpans splits a range string into one span per token, in input
// order, without normalizing. An empty (or all-whitespace) input yields
// no spans and no error.
func parseSpans(s string, options Options) ([]Span, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, options.Delimiter)
	spans := make([]Span, 0, len(tokens))
	for _, token := range tokens {
		sp, err := parseToken(token, options.RangeDelimiter)
		if err != nil {
			return nil, err
		}
		spans = append(spans, sp)
	}

	return spans, nil
}

// parseToken classifies one token as a singleton or a span. Only the
// first occurrence of the range delimiter past the token's first
// character counts as a separator, which keeps a leading minus sign out
// of the splitting: "-5" parses as a singleton, "-5--1" splits into
// "-5" and "-1". Descending spans normalize to ascending.
func parseToken(token, rangeDelim string) (Span, error) {
	if len(token) > 1 {
		if i := strings.Index(token[1:], rangeDelim); i >= 0 {
			low, err := strconv.Atoi(token[:i+1])
			if err != nil {
				return Span{}, &ParseError{Token: token, Err: err}
			}
			high, err := strconv.Atoi(token[i+1+len(rangeDelim):])
			if err != nil {
				return Span{}, &ParseError{Token: token, Err: err}
			}
			return Span{Low: min(low, high), High: max(low, high)}, nil
		}
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return Span{}, &ParseError{Token: token, Err: err}
	}
	return Span{Low: v, High: v}, nil
}
