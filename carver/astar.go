package carver

import (
	"container/heap"

	"github.com/skeletron-go/centerline/skeleton"
)

// astar searches for a path from start to goal in g, using edge length as
// step cost when weighted is true and unit hop cost otherwise. The
// heuristic is always the Euclidean distance between a node's point and
// goal's point — admissible for the weighted search since straight-line
// distance never exceeds a path's summed edge length. The unweighted
// (hop-count) search reuses the same heuristic in distance units, which
// can exceed the number of hops remaining, so the path it returns is not
// guaranteed to have the fewest hops.
func astar(g *skeleton.Graph, start, goal skeleton.NodeID, weighted bool) ([]skeleton.NodeID, bool) {
	goalPoint, err := g.Point(goal)
	if err != nil {
		return nil, false
	}
	startPoint, err := g.Point(start)
	if err != nil {
		return nil, false
	}

	gScore := map[skeleton.NodeID]float64{start: 0}
	cameFrom := map[skeleton.NodeID]skeleton.NodeID{}
	visited := map[skeleton.NodeID]bool{}

	open := &openHeap{{id: start, f: startPoint.Dist(goalPoint)}}
	heap.Init(open)

	for open.Len() > 0 {
		item := heap.Pop(open).(openItem)
		u := item.id
		if visited[u] {
			continue
		}
		if u == goal {
			return reconstructPath(cameFrom, start, goal), true
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			step := 1.0
			if weighted {
				length, ok := g.EdgeLength(u, v)
				if !ok {
					continue
				}
				step = length
			}
			tentative := gScore[u] + step
			if existing, ok := gScore[v]; ok && tentative >= existing {
				continue
			}
			gScore[v] = tentative
			cameFrom[v] = u

			vPoint, err := g.Point(v)
			if err != nil {
				continue
			}
			heap.Push(open, openItem{id: v, f: tentative + vPoint.Dist(goalPoint)})
		}
	}
	return nil, false
}

func reconstructPath(cameFrom map[skeleton.NodeID]skeleton.NodeID, start, goal skeleton.NodeID) []skeleton.NodeID {
	path := []skeleton.NodeID{goal}
	for path[len(path)-1] != start {
		path = append(path, cameFrom[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// openItem is one entry in A*'s open set, ordered by f = g + heuristic.
type openItem struct {
	id skeleton.NodeID
	f  float64
}

// openHeap is a min-heap of openItem: stale entries for an id that has
// already been popped at a better cost are left in place and skipped
// rather than fixed up in place, avoiding a decrease-key operation.
type openHeap []openItem

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openItem)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
