package layeredmap

import "errors"

// ErrNotFound is returned by Read when the key is not present.
var ErrNotFound = errors.New("layeredmap: key not found")

// ErrCapacityExceeded is returned when a growth would advance past the
// last layer the growth tables provide (maxLayerCount layers in all).
var ErrCapacityExceeded = errors.New("layeredmap: capacity exceeded")

// ErrInstancePoolExhausted is returned by the constructors when no
// instance index is free in the process-wide instance pool.
var ErrInstancePoolExhausted = errors.New("layeredmap: instance pool exhausted")
