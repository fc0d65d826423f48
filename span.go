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
	"cmp"
	"slices"
	"strconv"
)

// Span is an inclusive pair of integer bounds, Low <= High, representing
// one contiguous run of a range list. A singleton value v is the span
// with Low == High == v.
//
// Spans returned by this package are normalized: ascending by Low,
// disjoint, and never adjacent (two runs touching end to start are
// always merged into one).
type Span struct {
	Low  int
	High int
}

// Len returns the number of integers the span covers.
func (sp Span) Len() int {
	return sp.High - sp.Low + 1
}

// Contains returns true if v falls within the span.
func (sp Span) Contains(v int) bool {
	return v >= sp.Low && v <= sp.High
}

// String renders the span in the default notation: the bare integer for
// a singleton, "low-high" otherwise.
func (sp Span) String() string {
	if sp.Low == sp.High {
		return strconv.Itoa(sp.Low)
	}
	return strconv.Itoa(sp.Low) + defaultRangeDelimiter + strconv.Itoa(sp.High)
}

// touches returns true if two spans overlap or sit directly next to
// each other, so merging them loses no gap. Integers are discrete, so
// {1,3} and {4,6} touch.
func (sp Span) touches(other Span) bool {
	return sp.High+1 >= other.Low && other.High+1 >= sp.Low
}

// merge combines two touching spans into a single span covering both.
func (sp Span) merge(other Span) Span {
	return Span{
		Low:  min(sp.Low, other.Low),
		High: max(sp.High, other.High),
	}
}

// compareSpans orders spans by lower bound, then upper.
func compareSpans(a, b Span) int {
	if c := cmp.Compare(a.Low, b.Low); c != 0 {
		return c
	}
	return cmp.Compare(a.High, b.High)
}

// normalizeSpans sorts spans ascending and merges every overlapping or
// adjacent pair. The result is the canonical form every operation in
// this package emits: ascending, disjoint, with no two neighbors
// mergeable. The input slice is not modified.
func normalizeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, compareSpans)

	normalized := sorted[:1]
	for _, sp := range sorted[1:] {
		last := &normalized[len(normalized)-1]
		if last.touches(sp) {
			*last = last.merge(sp)
			continue
		}
		normalized = append(normalized, sp)
	}

	return normalized
}
