package catalog

import "errors"

// ErrVectorLengthMismatch indicates two vectors have different dimensions.
var ErrVectorLengthMismatch = errors.New("vector length mismatch")

// ErrNoSource indicates that neither a precomputed store nor a raw CSV
// source could be loaded.
var ErrNoSource = errors.New("no catalog source available")
