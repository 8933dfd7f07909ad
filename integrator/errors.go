package integrator

import "errors"

// ErrLayerCountMismatch indicates cfg.Layers does not match the field's
// layer count.
var ErrLayerCountMismatch = errors.New("integrator: layer count mismatch")
