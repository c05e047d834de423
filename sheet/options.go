// SPDX-License-Identifier: MIT

package sheet

// Option customizes an export.
type Option func(*options)

type options struct {
	terms bool
}

// WithoutTerms leaves the terms sheet out of the workbook.
func WithoutTerms() Option {
	return func(o *options) { o.terms = false }
}

func gatherOptions(opts ...Option) options {
	o := options{terms: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
