package kernel

import "errors"

// ErrUnknownShape indicates a params.ShapeKind this package does not know how
// to evaluate (should be unreachable once params.ValidateLayers has run).
var ErrUnknownShape = errors.New("kernel: unknown shape kind")

// ErrInvalidSigmaOrder indicates Sigma1 >= Sigma2, violating the σ₁ < σ₂
// assumption every shape formula in spec §4.3 depends on.
var ErrInvalidSigmaOrder = errors.New("kernel: Sigma1 must be < Sigma2")
