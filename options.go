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

// Options configures how range strings are split, rendered, and
// complemented. The zero-option call uses the conventional notation:
// "," between tokens, "-" between span ends, no spacing, complement
// interval starting at 0 with the upper bound derived from the input.
type Options struct {
	// Delimiter separates tokens in a range string.
	// Default: ","
	Delimiter string

	// RangeDelimiter joins the two ends of a span token.
	// Default: "-"
	RangeDelimiter string

	// SpacedDelimiter appends a space after each delimiter when
	// formatting. Parsing is unaffected; tokens are never trimmed
	// individually.
	SpacedDelimiter bool

	// LowerBound is the inclusive start of the complement interval.
	// Default: 0
	LowerBound int

	// UpperBound is the exclusive end of the complement interval,
	// effective only when HasUpperBound is set. When unset, Complement
	// derives it as one past the largest parsed value, or as LowerBound
	// when the input is empty.
	UpperBound int

	// HasUpperBound records whether UpperBound was supplied explicitly.
	HasUpperBound bool
}

// Option is a functional option applied to Options.
type Option func(*Options)

const (
	defaultDelimiter      = ","
	defaultRangeDelimiter = "-"
)

// defaultOptions returns the conventional configuration.
func defaultOptions() Options {
	return Options{
		Delimiter:      defaultDelimiter,
		RangeDelimiter: defaultRangeDelimiter,
	}
}

// buildOptions resolves a caller's option list against the defaults.
func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithDelimiter overrides the token delimiter.
//
// Example:
//
//	Parse("1;3;5-8", WithDelimiter(";"))
func WithDelimiter(delim string) Option {
	return func(opts *Options) {
		opts.Delimiter = delim
	}
}

// WithRangeDelimiter overrides the delimiter between the two ends of a
// span token.
//
// Example:
//
//	Format(values, WithRangeDelimiter(".."))
func WithRangeDelimiter(delim string) Option {
	return func(opts *Options) {
		opts.RangeDelimiter = delim
	}
}

// WithSpacedDelimiter enables or disables a space after each delimiter
// in formatted output, e.g. "1-3, 5" instead of "1-3,5".
func WithSpacedDelimiter(enabled bool) Option {
	return func(opts *Options) {
		opts.SpacedDelimiter = enabled
	}
}

// WithLowerBound sets the inclusive start of the complement interval.
func WithLowerBound(lower int) Option {
	return func(opts *Options) {
		opts.LowerBound = lower
	}
}

// WithUpperBound sets the exclusive end of the complement interval.
// Without it, Complement stops one past the largest value present in
// the input.
func WithUpperBound(upper int) Option {
	return func(opts *Options) {
		opts.UpperBound = upper
		opts.HasUpperBound = true
	}
}
