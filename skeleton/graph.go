package skeleton

import (
	"fmt"

	"github.com/skeletron-go/centerline/geom"
)

// NodeID indexes a node in a Graph's arena. NodeID(i) is stable for the
// lifetime of a node: removing a node leaves a hole rather than
// renumbering its neighbors.
type NodeID int

type edgeRef struct {
	to     NodeID
	length float64
}

// Graph is an undirected graph over planar points, backed by a
// slice-indexed arena rather than string-keyed maps — carving mutates it
// destructively and single-threadedly, and an arena clones cheaply. No
// duplicate node shares a coordinate within one Graph (builder
// invariant, not enforced by Graph itself).
type Graph struct {
	points []geom.Point
	alive  []bool
	adj    [][]edgeRef
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a new node at p and returns its ID.
func (g *Graph) AddNode(p geom.Point) NodeID {
	id := NodeID(len(g.points))
	g.points = append(g.points, p)
	g.alive = append(g.alive, true)
	g.adj = append(g.adj, nil)
	return id
}

// Point returns the coordinate of node id.
func (g *Graph) Point(id NodeID) (geom.Point, error) {
	if !g.valid(id) {
		return geom.Point{}, fmt.Errorf("skeleton: point %d: %w", id, ErrNodeNotFound)
	}
	return g.points[id], nil
}

// AddEdge adds an undirected edge between a and b with the given length.
// A second call for the same unordered pair is a no-op.
func (g *Graph) AddEdge(a, b NodeID, length float64) error {
	if !g.valid(a) || !g.valid(b) {
		return fmt.Errorf("skeleton: add edge (%d,%d): %w", a, b, ErrNodeNotFound)
	}
	if a == b {
		return ErrSelfLoop
	}
	if length <= 0 {
		return ErrNonPositiveLength
	}
	if g.HasEdge(a, b) {
		return nil
	}
	g.adj[a] = append(g.adj[a], edgeRef{to: b, length: length})
	g.adj[b] = append(g.adj[b], edgeRef{to: a, length: length})
	return nil
}

// HasEdge reports whether an edge exists between a and b.
func (g *Graph) HasEdge(a, b NodeID) bool {
	if !g.valid(a) {
		return false
	}
	for _, e := range g.adj[a] {
		if e.to == b {
			return true
		}
	}
	return false
}

// EdgeLength returns the length of the edge between a and b, if present.
func (g *Graph) EdgeLength(a, b NodeID) (float64, bool) {
	if !g.valid(a) {
		return 0, false
	}
	for _, e := range g.adj[a] {
		if e.to == b {
			return e.length, true
		}
	}
	return 0, false
}

// RemoveEdge deletes the edge between a and b, if present.
func (g *Graph) RemoveEdge(a, b NodeID) {
	if g.valid(a) {
		g.adj[a] = removeRef(g.adj[a], b)
	}
	if g.valid(b) {
		g.adj[b] = removeRef(g.adj[b], a)
	}
}

// RemoveNode deletes node id and every edge incident to it.
func (g *Graph) RemoveNode(id NodeID) {
	if !g.valid(id) {
		return
	}
	for _, e := range g.adj[id] {
		g.adj[e.to] = removeRef(g.adj[e.to], id)
	}
	g.adj[id] = nil
	g.alive[id] = false
}

// Degree returns the number of live edges incident to id.
func (g *Graph) Degree(id NodeID) int {
	if !g.valid(id) {
		return 0
	}
	return len(g.adj[id])
}

// Neighbors returns the IDs of nodes adjacent to id.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.valid(id) {
		return nil
	}
	out := make([]NodeID, len(g.adj[id]))
	for i, e := range g.adj[id] {
		out[i] = e.to
	}
	return out
}

// Nodes returns the IDs of every live node, in ascending order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.points))
	for i, alive := range g.alive {
		if alive {
			out = append(out, NodeID(i))
		}
	}
	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	n := 0
	for _, alive := range g.alive {
		if alive {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, adj := range g.adj {
		n += len(adj)
	}
	return n / 2
}

// Clone returns a deep copy of g, safe for independent destructive
// mutation — the route carver consumes edges as it carves, so it always
// works on its own copy of the skeleton.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		points: append([]geom.Point(nil), g.points...),
		alive:  append([]bool(nil), g.alive...),
		adj:    make([][]edgeRef, len(g.adj)),
	}
	for i, adj := range g.adj {
		clone.adj[i] = append([]edgeRef(nil), adj...)
	}
	return clone
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.alive) && g.alive[id]
}

func removeRef(refs []edgeRef, to NodeID) []edgeRef {
	out := refs[:0]
	for _, e := range refs {
		if e.to != to {
			out = append(out, e)
		}
	}
	return out
}
