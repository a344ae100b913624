package parallel

import "errors"

// ErrClosed is returned by Map when the pool was closed before every job ran.
var ErrClosed = errors.New("parallel: pool closed")
