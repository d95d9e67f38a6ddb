package diffx

// CompareOption represents optional parameters for a comparison run
type CompareOption func(*compareOptions)

type compareOptions struct {
	ignore      *IgnoreSet
	hideIgnored bool
	progress    ProgressFunc
}

// defaultCompareOptions returns default comparison options
func defaultCompareOptions() *compareOptions {
	return &compareOptions{
		ignore:      nil,
		hideIgnored: false,
		progress:    nil,
	}
}

// WithIgnoreSet excludes paths matching a pre-compiled ignore set
func WithIgnoreSet(set *IgnoreSet) CompareOption {
	return func(opts *compareOptions) {
		opts.ignore = set
	}
}

// WithIgnorePatterns excludes paths matching the glob patterns.
// Patterns that fail to compile are dropped; use NewIgnoreSet with
// WithIgnoreSet to surface compile errors instead.
func WithIgnorePatterns(patterns ...string) CompareOption {
	return func(opts *compareOptions) {
		valid := make([]string, 0, len(patterns))
		for _, pattern := range patterns {
			if _, err := NewIgnoreSet(pattern); err == nil {
				valid = append(valid, pattern)
			}
		}
		set, _ := NewIgnoreSet(valid...)
		opts.ignore = set
	}
}

// WithHideIgnored omits ignored paths from the result set entirely
// instead of emitting ClassIgnored records
func WithHideIgnored() CompareOption {
	return func(opts *compareOptions) {
		opts.hideIgnored = true
	}
}

// WithProgress sets a progress handler invoked after every path
func WithProgress(handler ProgressFunc) CompareOption {
	return func(opts *compareOptions) {
		opts.progress = handler
	}
}
