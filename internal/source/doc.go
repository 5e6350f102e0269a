// Package source defines particle source descriptors.
//
// A [Source] bundles three independent sampling rules (space, angle, energy)
// with a relative strength. [NewPoint] and [NewRing] cover the common
// isotropic emitters; arbitrary combinations go through [New]. Sampling a
// batch of particles from one or more descriptors is the job of the engine
// package.
package source
