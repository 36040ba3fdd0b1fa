package encode

import "errors"

// ErrEncoding wraps failures to render a value, such as a nil value or
// a Value with an unknown type tag. Writer errors pass through as-is.
var ErrEncoding = errors.New("encoding error")
