// Package initcond provides reference external-initializer helpers for ω
// and θ0 — spec §3/§6 treat "the external initializer" as a given
// collaborator ("written only by the external initializer"), but a
// complete, runnable repository needs at least one to exercise
// simulation.WriteTheta/WriteOmega and the scenarios of spec §8.
package initcond
