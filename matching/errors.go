package matching

import "errors"

// ErrInvalidInput indicates n < 0 or an edge referencing a vertex outside
// [0, n) on either side.
var ErrInvalidInput = errors.New("matching: invalid input")
