package carver

import (
	"context"
	"fmt"
	"sort"

	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/skeleton"
)

// Carve repeatedly extracts the best-scoring candidate route from g until
// no candidate pair can be connected, removing each winning path's edges
// as it goes. findLongest selects both the A* step cost (edge
// length when true, unit hops when false), the candidate pool composition
// (candidatePairs), and the scoring order — descending when true so the
// longest straight-line pair is attempted first, ascending otherwise.
// Routes whose length does not exceed minLengthM are dropped from the result.
//
// ctx bounds total carving time; Carve checks it at the top of every
// outer iteration and returns ErrOvertime-wrapped on expiry, since worst
// case the scheduling loop is quadratic in node count.
func Carve(ctx context.Context, g *skeleton.Graph, findLongest bool, minLengthM float64) ([]Route, error) {
	var routes []Route

	for g.EdgeCount() > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrOvertime, ctx.Err())
		default:
		}

		pairs := candidatePairs(g, findLongest)
		if len(pairs) == 0 {
			break
		}

		type scored struct {
			pair
			dist float64
		}
		ranked := make([]scored, 0, len(pairs))
		for _, p := range pairs {
			pa, errA := g.Point(p.a)
			pb, errB := g.Point(p.b)
			if errA != nil || errB != nil {
				continue
			}
			ranked = append(ranked, scored{pair: p, dist: pa.Dist(pb)})
		}
		if findLongest {
			sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist > ranked[j].dist })
		} else {
			sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })
		}

		found := false
		for _, r := range ranked {
			path, ok := astar(g, r.a, r.b, findLongest)
			if !ok {
				continue
			}
			route, err := buildRoute(g, path)
			if err != nil {
				continue
			}
			for i := 0; i+1 < len(path); i++ {
				g.RemoveEdge(path[i], path[i+1])
			}
			routes = append(routes, route)
			found = true
			break
		}
		if !found {
			break
		}
	}

	kept := routes[:0]
	for _, r := range routes {
		if r.Length > minLengthM {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

func buildRoute(g *skeleton.Graph, path []skeleton.NodeID) (Route, error) {
	points := make(geom.Polyline, 0, len(path))
	for _, id := range path {
		p, err := g.Point(id)
		if err != nil {
			return Route{}, err
		}
		points = append(points, p)
	}
	return Route{Points: points, Length: points.Length()}, nil
}
