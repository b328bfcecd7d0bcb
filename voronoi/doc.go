// Package voronoi defines the contract for computing a 2D Voronoi diagram
// over a set of sites, plus a subprocess-backed implementation that shells
// out to an external Voronoi tool speaking the "qvoronoi o" wire format.
//
// The interface is kept narrow — one method, Compute — so the pipeline
// can be tested against a fake driver without spawning a process.
package voronoi
