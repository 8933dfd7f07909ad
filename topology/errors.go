package topology

import "errors"

// ErrInvalidCellCount indicates a non-positive cell count was requested.
var ErrInvalidCellCount = errors.New("topology: cell count must be > 0")

// ErrDegreeExceeded indicates a cell already has DMax edges recorded.
var ErrDegreeExceeded = errors.New("topology: cell degree exceeds DMax")

// ErrIndexOutOfBounds indicates a cell or neighbor index outside [0, cellCount).
var ErrIndexOutOfBounds = errors.New("topology: index out of bounds")

// ErrTooFewCells indicates a builder was asked for a topology with too few
// cells to be meaningful (e.g. a ring shorter than 3).
var ErrTooFewCells = errors.New("topology: too few cells")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("topology: probability must be in [0,1]")

// ErrNeedRandSource indicates a stochastic builder was called with a nil
// *rand.Rand while a genuinely random outcome (0 < p < 1) was requested.
var ErrNeedRandSource = errors.New("topology: random source required")
