// Package skeleton builds and maintains the interior skeleton graph
// extracted from a buffer polygon and its Voronoi diagram: an
// undirected graph whose nodes are Voronoi vertices strictly inside the
// buffer polygon and whose edges are cell-boundary segments also strictly
// inside it, with short leaf branches pruned away.
//
// Graph uses integer node IDs over a slice-backed arena rather than
// string-keyed maps: the route carver needs a structure that is cheap to
// clone and that it can mutate destructively and single-threadedly, with
// no concurrent readers once a Graph is handed to it.
package skeleton
