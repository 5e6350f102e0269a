// Package dist provides univariate sampling rules used to build particle
// source descriptors.
//
// Every rule implements [Univariate] and is immutable once constructed:
//
//   - [Discrete]: finite value set with relative weights
//   - [Uniform], [PowerLaw]: continuous rules over an interval
//   - [Normal]: Gaussian
//   - [Maxwell], [Watt], [Muir]: physical neutron energy spectra
//
// Sampling is deterministic under a fixed seed; use [NewRand] to obtain a
// seeded generator and thread it through every Sample call.
package dist
