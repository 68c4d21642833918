package yso

import (
	"fmt"
	"strings"
)

// Option configures parsing and serialization.
type Option func(*options) error

type options struct {
	sortKeys        bool
	header          []string
	colors          *Colors
	disallowOrphans bool
}

func applyOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// SortKeys returns an Option that writes named scopes and the keys within
// every scope in sorted order instead of insertion order. The global scope
// is still written first.
func SortKeys() Option {
	return func(o *options) error {
		o.sortKeys = true
		return nil
	}
}

// Header returns an Option that writes text as comment lines at the top of
// the output, followed by a blank line.
func Header(text string) Option {
	return func(o *options) error {
		text = strings.TrimRight(text, "\r\n")
		if text == "" {
			o.header = nil
			return nil
		}
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
		o.header = lines
		return nil
	}
}

// WithColors returns an Option that colorizes the output with c. It is
// meant for terminals; Save ignores it.
func WithColors(c *Colors) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("yso: color scheme must not be nil")
		}
		o.colors = c
		return nil
	}
}

// DisallowOrphans returns an Option that makes lines which are neither
// section headers, key-value pairs nor comments a parse error. By default
// they are skipped.
func DisallowOrphans() Option {
	return func(o *options) error {
		o.disallowOrphans = true
		return nil
	}
}
