package skeleton

// Prune removes short leaf branches iteratively: a degree-1 node whose
// accumulated chain depth from its original terminus
// is below leafPruneDepthM has its incident edge length folded into its
// neighbor's depth and is then deleted. Passes repeat until one removes
// nothing. Returns the number of nodes removed.
func Prune(g *Graph, leafPruneDepthM float64) int {
	depth := make(map[NodeID]float64)
	removed := 0

	for {
		progressed := false
		for _, id := range g.Nodes() {
			if g.Degree(id) != 1 {
				continue
			}
			if depth[id] >= leafPruneDepthM {
				continue
			}

			neighbor := g.Neighbors(id)[0]
			length, ok := g.EdgeLength(id, neighbor)
			if !ok {
				continue
			}
			depth[neighbor] += depth[id] + length
			delete(depth, id)
			g.RemoveNode(id)
			removed++
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return removed
}
