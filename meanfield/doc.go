// Package meanfield defines the external global-order-reduction interface
// the core consumes (spec §1 Non-goals: "the global-order reduction shaders
// ... their implementation is a plain tree-reduction and needs no further
// specification here" — it is an out-of-scope collaborator, consumed via
// the Source interface). This package also ships TreeReduce, a concurrent
// reference implementation good enough for the headless demo and for tests
// that need a real mean field without wiring an external renderer.
package meanfield
