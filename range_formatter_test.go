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

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"empty", nil, ""},
		{"singleton", []int{5}, "5"},
		{"single run", []int{1, 2, 3}, "1-3"},
		{"mixed runs", []int{1, 3, 5, 6, 7, 8, 10, 11, 15}, "1,3,5-8,10-11,15"},
		{"unsorted input", []int{15, 1, 8, 3, 6, 5, 11, 7, 10}, "1,3,5-8,10-11,15"},
		{"duplicates", []int{2, 1, 2, 3, 1}, "1-3"},
		{"two-value run collapses", []int{10, 11}, "10-11"},
		{"gap of one stays split", []int{1, 3}, "1,3"},
		{"negative run", []int{-3, -2, -1}, "-3--1"},
		{"run across zero", []int{-1, 0, 1}, "-1-1"},
		{"lone negatives", []int{-5, -3}, "-5,-3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.values); got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestFormatDelimiterOptions(t *testing.T) {
	t.Parallel()

	values := []int{1, 2, 5, 8, 9}

	if got := Format(values, WithSpacedDelimiter(true)); got != "1-2, 5, 8-9" {
		t.Fatalf("spaced delimiter = %q, want %q", got, "1-2, 5, 8-9")
	}

	got := Format(values, WithDelimiter(";"), WithRangeDelimiter(".."))
	if got != "1..2;5;8..9" {
		t.Fatalf("custom delimiters = %q, want %q", got, "1..2;5;8..9")
	}
}

func TestFormatInputNotModified(t *testing.T) {
	t.Parallel()

	values := []int{3, 1, 2}
	Format(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Fatalf("Format reordered its input: %v", values)
	}
}

func TestFormatCanonical(t *testing.T) {
	t.Parallel()

	// Reformatting a canonical string reproduces it exactly.
	inputs := []string{
		"",
		"5",
		"1,3,5-8,10-11,15",
		"-5--1,3",
		"0-2,4,6-9",
	}

	for _, input := range inputs {
		values := mustParse(t, input)
		if got := Format(values); got != input {
			t.Fatalf("Format(Parse(%q)) = %q, want the input back", input, got)
		}
	}
}
