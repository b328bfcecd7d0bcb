package carver

import "github.com/skeletron-go/centerline/skeleton"

// pair is an unordered candidate endpoint pair for A*.
type pair struct {
	a, b skeleton.NodeID
}

// candidatePairs collects the endpoint pool for the current outer iteration
// and returns every unordered pair drawn from it. Degree-1
// leaves are always included. Degree-3 Y-junctions join the pool whenever
// there is at most one leaf to pair from, or when findLongest is false —
// both cases where leaf pairs alone would under-cover the graph. If the
// pool still has fewer than two nodes (a graph with no leaves or
// junctions, e.g. a bare cycle), a single degree-2 node and one of its
// neighbors seed the only candidate pair so carving can still make
// progress.
func candidatePairs(g *skeleton.Graph, findLongest bool) []pair {
	var leaves, junctions []skeleton.NodeID
	for _, id := range g.Nodes() {
		switch g.Degree(id) {
		case 1:
			leaves = append(leaves, id)
		case 3:
			junctions = append(junctions, id)
		}
	}

	pool := leaves
	if len(leaves) <= 1 || !findLongest {
		pool = append(pool, junctions...)
	}

	if len(pool) < 2 {
		for _, id := range g.Nodes() {
			if g.Degree(id) == 2 {
				neighbors := g.Neighbors(id)
				return []pair{{a: id, b: neighbors[0]}}
			}
		}
		return nil
	}

	return allPairs(pool)
}

func allPairs(nodes []skeleton.NodeID) []pair {
	var pairs []pair
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			pairs = append(pairs, pair{a: nodes[i], b: nodes[j]})
		}
	}
	return pairs
}
