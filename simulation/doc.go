// Package simulation is the facade spec §6 describes as "external
// interfaces": Step, WriteTheta, WriteOmega, Resize, and a Snapshot/Restore
// pair this repository supplies as a reference collaborator. It owns one
// params.Store and one field.State and wires them through package
// integrator each step, recomputing the mean field via package meanfield
// when global_coupling is on.
package simulation
