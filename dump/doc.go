// Package dump writes the diagnostic text files emitted on recoverable
// pipeline failures: a Voronoi failure writes a
// "qhull-failure-*.txt", a carver overtime writes a "graph-overtime-*.txt".
// Both share the same unique-suffix temp-file discipline so operators get
// one place to look for offline diagnosis.
package dump
