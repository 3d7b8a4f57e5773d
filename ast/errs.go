package ast

import "errors"

var (
	// ErrLoad is returned for tree documents which cannot be decoded into
	// a Node.
	ErrLoad = errors.New("load error")
	// ErrEncode is returned when a Node cannot be written as a document.
	ErrEncode = errors.New("encode error")
)
