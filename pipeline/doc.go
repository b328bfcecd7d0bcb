// Package pipeline wires the buffering, partitioning, Voronoi, skeleton,
// and carving stages into single- and multi-group orchestrators. It owns
// the typed error kinds, the BufferConfig derivation, structured logging,
// and optional Prometheus counters that the lower-level geometry packages
// stay free of.
package pipeline
