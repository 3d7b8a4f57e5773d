package dump

type DumpOption func(*dumpState)

// AnnotateFields selects whether entries are written as name=value or as
// bare values.
func AnnotateFields(v bool) DumpOption {
	return func(ds *dumpState) { ds.annotate = v }
}

// IncludeAttributes appends the position attributes of nodes which have
// any after their fields.
func IncludeAttributes(v bool) DumpOption {
	return func(ds *dumpState) { ds.attrs = v }
}

func WithIndent(indent string) DumpOption {
	return func(ds *dumpState) { ds.indent = indent }
}

func WithColors(c *Colors) DumpOption {
	return func(ds *dumpState) {
		if c != nil {
			ds.color = c.Color
		}
	}
}
