// Package topology implements the optional sparse adjacency table used when
// a field's topology_mode is on (spec §3 "Graph adjacency (optional)"): a
// fixed-degree CSR-like structure of three parallel arrays — neighbor
// index, signed weight, and per-cell degree — plus a handful of
// deterministic builders (ring, 4-neighbor lattice, Erdős–Rényi-style
// random sparse) grounded on the teacher's builder.Cycle/Grid/RandomSparse
// constructors, generalized from named-vertex graphs to a fixed linear
// cell-index space.
package topology
