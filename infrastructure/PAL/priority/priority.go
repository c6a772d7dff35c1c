package priority

import "errors"

// Nice is the niceness requested for the connection thread.
const Nice = -10

var ErrUnsupported = errors.New("thread priority is not supported on this platform")
