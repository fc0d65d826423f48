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

import "fmt"

// ParseError reports a range-string token that does not reduce to one
// integer or two integers around the range delimiter. Parsing stops at
// the first bad token; no partial result is returned.
type ParseError struct {
	// Token is the delimited segment that failed to parse, exactly as it
	// appeared in the input. Callers presenting errors to users should
	// quote it.
	Token string
	// Err is the underlying cause, typically a *strconv.NumError.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed range token %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("malformed range token %q", e.Token)
}

// Unwrap returns the underlying error (for errors.Is/As compatibility).
func (e *ParseError) Unwrap() error {
	return e.Err
}
