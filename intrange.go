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

// Package intrange converts between human-readable integer range lists
// and concrete integer collections.
//
// A range string is a delimiter-separated list of tokens, each token
// either a single integer or two integers joined by a range delimiter
// denoting an inclusive span:
//
//	"1,3,5-8,10-11,15"
//
// Four operations form a closed algebra over the two representations:
//
//   - Parse expands a range string into a sorted, deduplicated []int.
//   - Format collapses a collection of integers into the canonical,
//     minimal range string (ascending, maximal runs, no duplicates).
//   - Complement produces the range string of the integers inside a
//     half-open interval that the input does not cover.
//   - Spans returns the canonical inclusive bound pairs of a range
//     string.
//
// All four are pure functions with no shared state, so concurrent
// callers need no synchronization. Delimiters default to "," and "-"
// and are overridable per call through functional options.
//
// Parse materializes every integer a span covers, so the working set is
// bounded only by the input: a caller handing "0-999999999999" to Parse
// or to a Complement with matching bounds gets exactly the allocation
// it asked for. Callers accepting untrusted range strings should vet
// span widths themselves.
package intrange
