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

// Spans converts a range string into its canonical inclusive bound
// pairs: ascending by Low, disjoint, never adjacent. Messy input is
// normalized on the way — duplicates collapse, out-of-order tokens
// sort, and touching runs merge — so the result always matches what
// splitting Format(Parse(s)) would produce, without materializing the
// intermediate integers.
//
// Examples:
//
//	Spans("1,3,5-8,10-11,15") // [{1 1} {3 3} {5 8} {10 11} {15 15}]
//	Spans("5,3,1-2")          // [{1 3} {5 5}]
//	Spans("")                 // []
func Spans(s string, opts ...Option) ([]Span, error) {
	spans, err := parseSpans(s, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return normalizeSpans(spans), nil
}
