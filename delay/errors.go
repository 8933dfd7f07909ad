package delay

import "errors"

// ErrInvalidCellCount indicates a non-positive cell count was requested.
var ErrInvalidCellCount = errors.New("delay: cell count must be > 0")

// ErrInvalidDelay indicates a delay d outside [1, RingSize-1] (spec §3: "an
// integer in [1, K-1]").
var ErrInvalidDelay = errors.New("delay: delay out of range")

// ErrSnapshotSizeMismatch indicates a Push call with a slice whose length
// does not equal the ring's configured cell count.
var ErrSnapshotSizeMismatch = errors.New("delay: snapshot size mismatch")
