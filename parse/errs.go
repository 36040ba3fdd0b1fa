package parse

import (
	"errors"
)

// ErrSyntax is the class of malformed-text failures. Every error
// returned by Parse wraps either it or ir.ErrDepth.
var ErrSyntax = errors.New("syntax error")
