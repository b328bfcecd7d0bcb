package carver

import "time"

// minDeadline floors the carving budget so small graphs always get
// adequate time regardless of the coefficient.
const minDeadline = 1 * time.Second

// Deadline computes the carving time budget: timeCoefficient seconds per
// node, floored at one second. Typical runtime is linear in node count
// with occasional O(n^2) spikes; the caller wraps a context with this
// duration and Carve observes it cooperatively at each outer iteration.
func Deadline(nodeCount int, timeCoefficient float64) time.Duration {
	d := time.Duration(timeCoefficient * float64(nodeCount) * float64(time.Second))
	if d < minDeadline {
		return minDeadline
	}
	return d
}
