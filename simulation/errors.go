package simulation

import "errors"

// ErrFieldSizeMismatch indicates a WriteTheta/WriteOmega call whose slice
// length does not equal the current L*R*C cell count.
var ErrFieldSizeMismatch = errors.New("simulation: field size mismatch")
