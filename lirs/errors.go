package lirs

import "errors"

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("lirs: capacity must be a positive integer")

// ErrInvalidHIRRatio is returned by New when hirRatio is outside (0, 1).
var ErrInvalidHIRRatio = errors.New("lirs: hir ratio must lie in the open interval (0, 1)")
