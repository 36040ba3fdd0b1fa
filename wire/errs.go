package wire

import "errors"

var (
	// ErrEOF reports input ending before the value was complete, or a
	// count promising more nodes than the remaining buffer could hold.
	ErrEOF = errors.New("unexpected end of input")

	// ErrTag reports an unknown tag byte, a non-string object key, or
	// a bool payload other than 0x00/0x01. Encode wraps it for values
	// whose Type field holds no known type.
	ErrTag = errors.New("invalid tag")

	// ErrReference reports a stringref pointing at a dictionary entry
	// that has not been populated.
	ErrReference = errors.New("invalid reference")

	// ErrLimit reports input exceeding a configured decode limit.
	ErrLimit = errors.New("limit exceeded")

	// ErrVersion reports an unsupported leading version byte.
	ErrVersion = errors.New("unsupported version")

	// ErrTrailing reports leftover bytes after the root value.
	ErrTrailing = errors.New("trailing bytes")
)
