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
	"math/rand"
	"testing"
)

// benchmarkValues mixes singletons and runs so collapsing does real work.
func benchmarkValues(n int) []int {
	r := rand.New(rand.NewSource(42))
	values := make([]int, 0, n)
	v := 0
	for len(values) < n {
		run := 1 + r.Intn(5)
		for i := 0; i < run && len(values) < n; i++ {
			values = append(values, v)
			v++
		}
		v += 1 + r.Intn(3)
	}
	return values
}

func BenchmarkFormat(b *testing.B) {
	values := benchmarkValues(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Format(values)
	}
}

func BenchmarkParse(b *testing.B) {
	input := Format(benchmarkValues(1024))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkComplement(b *testing.B) {
	input := Format(benchmarkValues(1024))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Complement(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkSpans(b *testing.B) {
	input := Format(benchmarkValues(1024))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Spans(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
