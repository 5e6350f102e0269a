// Package plot renders sampled particle batches as terminal figures.
//
// Plotting is free-function composition over source descriptors and their
// samples: [Energy], [Position] and [Direction] each take an optional
// existing [Figure] handle for overlay and return the handle. Energy
// figures draw asciigraph histograms; position and direction figures draw
// Braille-canvas scatters. Any figure can also be exported as SVG.
package plot
