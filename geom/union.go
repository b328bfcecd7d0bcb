package geom

// CascadedUnion merges items pairwise in a balanced tree rather than
// folding them one at a time into a single accumulator, keeping the merge
// tree's depth at O(log n) instead of O(n) — folding into one accumulator
// makes each union progressively more expensive as it absorbs the whole
// result so far, which is quadratic overall on large inputs.
//
// Base cases: 0 items returns the zero value of T with no error (the
// "empty union"); 1 item is returned unchanged; 2 items are combined with
// pairwiseUnion directly. n > 2 splits items in half, unions each half
// recursively, then unions the two results.
//
// Associative up to geometric equivalence: union({a,b,c,d}) is equivalent
// to union(union({a,b}), union({c,d})) as long as pairwiseUnion itself is
// associative and commutative, which any correct polygon-union
// implementation is.
func CascadedUnion[T any](items []T, pairwiseUnion func(a, b T) (T, error)) (T, error) {
	var zero T
	switch len(items) {
	case 0:
		return zero, nil
	case 1:
		return items[0], nil
	case 2:
		return pairwiseUnion(items[0], items[1])
	default:
		mid := len(items) / 2
		left, err := CascadedUnion(items[:mid], pairwiseUnion)
		if err != nil {
			return zero, err
		}
		right, err := CascadedUnion(items[mid:], pairwiseUnion)
		if err != nil {
			return zero, err
		}
		return pairwiseUnion(left, right)
	}
}

// LinearMerge dissolves a set of line fragments into maximal connected
// polylines by chaining fragments that share an endpoint, reversing a
// fragment's direction when it only connects tail-to-tail or head-to-head.
// Fragments that cannot be chained to anything are returned unchanged.
// Order of the output is not meaningful; callers that need a stable order
// should sort the result themselves.
func LinearMerge(lines []Polyline) MultiPolyline {
	adjacency := make(map[Point][]int)
	for i, l := range lines {
		if len(l) == 0 {
			continue
		}
		adjacency[l[0]] = append(adjacency[l[0]], i)
		adjacency[l[len(l)-1]] = append(adjacency[l[len(l)-1]], i)
	}

	used := make([]bool, len(lines))
	var merged []Polyline
	for i := range lines {
		if used[i] || len(lines[i]) == 0 {
			continue
		}
		used[i] = true
		chain := append(Polyline{}, lines[i]...)
		chain = extendForward(chain, lines, used, adjacency)
		chain = extendBackward(chain, lines, used, adjacency)
		merged = append(merged, chain)
	}
	return MultiPolyline{Parts: merged}
}

func extendForward(chain Polyline, lines []Polyline, used []bool, adjacency map[Point][]int) Polyline {
	for {
		tail := chain[len(chain)-1]
		next := findUnusedMatch(tail, lines, used, adjacency)
		if next < 0 {
			return chain
		}
		cand := lines[next]
		used[next] = true
		if cand[0].Equal(tail) {
			chain = append(chain, cand[1:]...)
		} else {
			chain = append(chain, reversePolyline(cand)[1:]...)
		}
	}
}

func extendBackward(chain Polyline, lines []Polyline, used []bool, adjacency map[Point][]int) Polyline {
	for {
		head := chain[0]
		next := findUnusedMatch(head, lines, used, adjacency)
		if next < 0 {
			return chain
		}
		cand := lines[next]
		used[next] = true
		if cand[len(cand)-1].Equal(head) {
			chain = append(append(Polyline{}, cand[:len(cand)-1]...), chain...)
		} else {
			rev := reversePolyline(cand)
			chain = append(append(Polyline{}, rev[:len(rev)-1]...), chain...)
		}
	}
}

func findUnusedMatch(p Point, lines []Polyline, used []bool, adjacency map[Point][]int) int {
	for _, j := range adjacency[p] {
		if !used[j] {
			return j
		}
	}
	return -1
}

func reversePolyline(pl Polyline) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}
