// Package plasma generates source ensembles from a parametric tokamak
// equilibrium.
//
// A [Tokamak] holds the cross-section geometry (major/minor radius,
// elongation, triangularity, pedestal radius, Shafranov factor) and the
// radial ion density and temperature profiles for the chosen confinement
// [Mode]. [Tokamak.MakeSources] discretizes the plasma volume into ring
// sub-sources weighted by the local D-T neutron emission density, each with
// a Muir energy spectrum at the local ion temperature.
package plasma
