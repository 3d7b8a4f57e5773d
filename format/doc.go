// Package format names the document formats in which syntax trees are
// stored on disk.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	err = ast.Encode(tree, w, f)
//
// # Related Packages
//
//   - github.com/signadot/astunparse/ast - loads and encodes tree documents
package format
