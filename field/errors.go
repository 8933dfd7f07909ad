package field

import "errors"

// ErrInvalidShape indicates a layers/rows/cols triple with a non-positive
// dimension or a layer count outside [1, MaxLayers] (params.MaxLayers).
var ErrInvalidShape = errors.New("field: invalid shape")

// ErrNonFinite indicates NaN or Inf was found in θ after a step — spec §7's
// "numerical anomaly" error class, reported but never silently recovered.
var ErrNonFinite = errors.New("field: non-finite value in theta")

// ErrNoGraph indicates topology-mode access to a graph that was never set.
var ErrNoGraph = errors.New("field: topology mode enabled but no graph set")
