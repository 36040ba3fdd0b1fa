package ir

import (
	"errors"
)

// ErrDepth is the class of depth-limit failures. The text parser, the
// binary encoder, and the binary decoder all wrap it when a document
// nests past the configured maximum.
var ErrDepth = errors.New("max depth exceeded")
