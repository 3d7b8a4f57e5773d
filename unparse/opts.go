package unparse

type UnparseOption func(*state)

// WithIndent sets the number of spaces per indentation level. The default
// is 4.
func WithIndent(n int) UnparseOption {
	return func(s *state) {
		if n > 0 {
			s.indent = n
		}
	}
}
