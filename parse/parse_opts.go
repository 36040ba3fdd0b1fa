package parse

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the container nesting limit (DefaultMaxDepth when
// unset). A document whose containers nest deeper fails with
// ir.ErrDepth before the parser descends past the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
