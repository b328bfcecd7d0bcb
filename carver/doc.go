// Package carver destructively extracts routes from a skeleton graph:
// each outer iteration scores candidate leaf/Y-junction pairs
// by straight-line distance, walks them in score order attempting an A*
// search, and on the first success removes the winning path's edges and
// records it as a Route. A cooperative watchdog context bounds the total
// time spent, since worst-case runtime can be quadratic in node count.
package carver
