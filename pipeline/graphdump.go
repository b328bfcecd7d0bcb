package pipeline

import (
	"github.com/skeletron-go/centerline/dump"
	"github.com/skeletron-go/centerline/skeleton"
)

// toGraphDump flattens a skeleton.Graph into dump's serialization shape.
// Lives in pipeline rather than skeleton so skeleton stays free of a
// dependency on dump's file-writing concern.
func toGraphDump(g *skeleton.Graph) dump.GraphDump {
	nodes := g.Nodes()
	gd := dump.GraphDump{
		Nodes: make([]dump.NodeDump, 0, len(nodes)),
	}
	seen := make(map[[2]skeleton.NodeID]bool)
	for _, id := range nodes {
		p, err := g.Point(id)
		if err != nil {
			continue
		}
		gd.Nodes = append(gd.Nodes, dump.NodeDump{ID: int(id), X: p.X, Y: p.Y})

		for _, nb := range g.Neighbors(id) {
			key := edgeKey(id, nb)
			if seen[key] {
				continue
			}
			seen[key] = true
			length, ok := g.EdgeLength(id, nb)
			if !ok {
				continue
			}
			gd.Edges = append(gd.Edges, dump.EdgeDump{From: int(id), To: int(nb), Length: length})
		}
	}
	return gd
}

func edgeKey(a, b skeleton.NodeID) [2]skeleton.NodeID {
	if a < b {
		return [2]skeleton.NodeID{a, b}
	}
	return [2]skeleton.NodeID{b, a}
}
