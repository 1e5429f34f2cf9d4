package result

import "errors"

// ErrUnknown stands in for a nil error handed to Err.
var ErrUnknown = errors.New("unknown error")
