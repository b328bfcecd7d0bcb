// Package partition implements the eigenvector principal-axis splitter:
// given an oversized point set, it finds the major axis of the set's
// spread and divides the set in half along it, recursing on a buffered
// polygon until every subdivision holds fewer than a configured number of
// sites.
package partition
