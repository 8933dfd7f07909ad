// SPDX-License-Identifier: MIT
// Package: kuramoto/params
//
// errors.go — sentinel errors for the params package.
//
// Error policy, carried over from the teacher's builder/errors.go:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Sentinels are never wrapped with formatted strings at definition site.
//   • Store methods attach context with fmt.Errorf("%w", ...) at the call site.

package params

import "errors"

// ErrInvalidLayerCount indicates a LayerCount outside [1, MaxLayers].
var ErrInvalidLayerCount = errors.New("params: layer count out of bounds")

// ErrInvalidActiveLayer indicates ActiveLayer is outside [0, LayerCount).
var ErrInvalidActiveLayer = errors.New("params: active layer out of bounds")

// ErrInvalidGridSize indicates Cols or Rows is non-positive.
var ErrInvalidGridSize = errors.New("params: grid dimensions must be > 0")

// ErrUnknownRuleMode indicates a RuleMode value outside the six defined modes.
var ErrUnknownRuleMode = errors.New("params: unknown rule mode")

// ErrUnknownShape indicates a ShapeKind value outside the seven defined shapes.
var ErrUnknownShape = errors.New("params: unknown kernel shape")

// ErrUnknownInjectionMode indicates an InjectionMode outside the three defined modes.
var ErrUnknownInjectionMode = errors.New("params: unknown injection mode")

// ErrRangeExceedsHalo indicates a requested neighborhood range is larger than
// the reducer's tile halo without a documented fallback enabled (spec §7,
// configuration error class).
var ErrRangeExceedsHalo = errors.New("params: range exceeds tile halo")
