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

// Complement returns the range string of every integer inside the
// half-open interval [lower, upper) that the input range string does
// not cover, rendered with the same delimiters as the input.
//
// The interval comes from WithLowerBound (inclusive, default 0) and
// WithUpperBound (exclusive). When no upper bound is supplied it
// resolves to one past the largest value in the input, or to the lower
// bound when the input is empty — so a fully empty input with default
// bounds complements to "".
//
// Examples:
//
//	Complement("1,3,5-8,10-11,15")                       // "0,2,4,9,12-14"
//	Complement("1,3,5-8,10-11,15", WithUpperBound(20))   // "0,2,4,9,12-14,16-19"
//	Complement("1-5", WithLowerBound(3), WithUpperBound(3)) // ""
//
// Degenerate intervals are valid input, not errors: whenever
// lower >= upper the result is "" regardless of what the input covers.
// Negative bounds participate normally. The only error condition is a
// malformed input token, reported as a *ParseError.
func Complement(s string, opts ...Option) (string, error) {
	options := buildOptions(opts)

	spans, err := parseSpans(s, options)
	if err != nil {
		return "", err
	}
	spans = normalizeSpans(spans)

	lower := options.LowerBound
	upper := options.UpperBound
	if !options.HasUpperBound {
		if len(spans) > 0 {
			upper = spans[len(spans)-1].High + 1
		} else {
			upper = lower
		}
	}
	if lower >= upper {
		return "", nil
	}

	return renderSpans(gapsWithin(spans, lower, upper), options), nil
}

// gapsWithin walks normalized spans and collects the sub-intervals of
// [lower, upper) they leave uncovered. Spans entirely outside the
// interval contribute nothing. Requires lower < upper.
func gapsWithin(spans []Span, lower, upper int) []Span {
	gaps := make([]Span, 0, len(spans)+1)
	next := lower

	for _, sp := range spans {
		if sp.High < next {
			continue
		}
		if sp.Low >= upper {
			break
		}
		if sp.Low > next {
			gaps = append(gaps, Span{Low: next, High: min(sp.Low-1, upper-1)})
		}
		next = sp.High + 1
		if next >= upper {
			return gaps
		}
	}

	if next < upper {
		gaps = append(gaps, Span{Low: next, High: upper - 1})
	}
	return gaps
}
