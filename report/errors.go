package report

import "errors"

// ErrBzip2Unavailable indicates --bzip2 was requested but no system bzip2
// binary could be located on PATH.
var ErrBzip2Unavailable = errors.New("report: bzip2 binary not found on PATH")
