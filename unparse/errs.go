package unparse

import (
	"errors"
	"fmt"
)

var ErrSyntax = errors.New("syntax error")

var (
	ErrMultipleTargets = fmt.Errorf("%w: only single target (not list) can be annotated (PEP 526)", ErrSyntax)
	ErrGroupedTarget   = fmt.Errorf("%w: only single target (not tuple) can be annotated (PEP 526)", ErrSyntax)
	// ErrRedundantAnnotation is returned for an annotated assignment which
	// also carries type comment text.
	ErrRedundantAnnotation = fmt.Errorf("%w: annotated assignment cannot have a type comment (PEP 526)", ErrSyntax)
)
