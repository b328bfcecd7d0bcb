package skeleton

// ConnectedComponents partitions g's live nodes into connected components
// via level-order (breadth-first) traversal. Used diagnostically — a
// subdivision's skeleton may legitimately come out disconnected.
func ConnectedComponents(g *Graph) [][]NodeID {
	visited := make(map[NodeID]bool)
	var components [][]NodeID

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		var component []NodeID
		queue := []NodeID{start}
		visited[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, id)
			for _, n := range g.Neighbors(id) {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, component)
	}

	return components
}
