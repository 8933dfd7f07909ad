// Package params owns the simulation's Params and LayerParams records and
// mediates every write to them through Store.
//
// Store is the single writer; Params/LayerParams are plain value types so
// readers (field, kernel, rule, integrator) always see a consistent,
// fully-formed snapshot — never a partially applied update. This mirrors the
// teacher's core.Graph split-lock idiom (muVert/muEdgeAdj guarding disjoint
// state) generalized to a single RWMutex guarding one value, since Params is
// read far more often than written.
package params
