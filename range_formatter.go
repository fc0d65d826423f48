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
	"strconv"
	"strings"
)

// Format collapses a collection of integers into the canonical range
// string: tokens ascend numerically, each token is a maximal contiguous
// run, and no value appears twice. The input may be unsorted and may
// contain duplicates; it is not modified. An empty input formats as "".
//
// Run detection is strict +1 succession and sign-agnostic, so negative
// values collapse the same way positive ones do:
//
//	Format([]int{1, 3, 5, 6, 7, 8, 10, 11, 15}) // "1,3,5-8,10-11,15"
//	Format([]int{-3, -2, -1})                   // "-3--1"
//	Format([]int{2, 1, 2, 3})                   // "1-3"
//
// Format never fails: every []int has a canonical form.
func Format(values []int, opts ...Option) string {
	if len(values) == 0 {
		return ""
	}

	spans := make([]Span, len(values))
	for i, v := range values {
		spans[i] = Span{Low: v, High: v}
	}

	return renderSpans(normalizeSpans(spans), buildOptions(opts))
}

// renderSpans joins normalized spans into a range string. Singleton
// spans render as the bare integer, wider spans as "low<delim>high".
func renderSpans(spans []Span, options Options) string {
	if len(spans) == 0 {
		return ""
	}

	separator := options.Delimiter
	if options.SpacedDelimiter {
		separator += " "
	}

	var sb strings.Builder
	for i, sp := range spans {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(strconv.Itoa(sp.Low))
		if sp.High != sp.Low {
			sb.WriteString(options.RangeDelimiter)
			sb.WriteString(strconv.Itoa(sp.High))
		}
	}

	return sb.String()
}
