package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyResult marks "no routes survived the min_length filter for this
// group" as "no output", never a caller-visible failure. Callers check
// errors.Is against this sentinel only if they build their own recovery
// on top of RunGroup directly; Orchestrator.Run already filters it out of
// the result stream.
var ErrEmptyResult = errors.New("pipeline: no routes survived min_length filter")

// VoronoiFailureError reports a Voronoi driver failure recovered at
// subdivision granularity: RunGroup logs it, writes a failure dump, skips
// that subdivision, and collects the error on the group's Result.Skipped
// rather than aborting — one bad cell shouldn't discard an otherwise
// usable group. Cause wraps the underlying voronoi.ErrDriverFailed or
// voronoi.ErrMalformedOutput; DumpPath is set when a failure dump was
// written.
type VoronoiFailureError struct {
	GroupKey string
	Cause    error
	DumpPath string
}

func (e *VoronoiFailureError) Error() string {
	return fmt.Sprintf("pipeline: group %q: voronoi driver failed: %v (dump: %s)", e.GroupKey, e.Cause, e.DumpPath)
}

func (e *VoronoiFailureError) Unwrap() error { return e.Cause }

// CarverOvertimeError reports the carving watchdog firing, recovered at
// group granularity. Cause wraps carver.ErrOvertime.
type CarverOvertimeError struct {
	GroupKey string
	Cause    error
	DumpPath string
}

func (e *CarverOvertimeError) Error() string {
	return fmt.Sprintf("pipeline: group %q: carver overtime: %v (dump: %s)", e.GroupKey, e.Cause, e.DumpPath)
}

func (e *CarverOvertimeError) Unwrap() error { return e.Cause }

// InvalidInputError reports a group whose geometry is not a usable line
// or polygon collection. Propagated to the caller; the group is skipped.
type InvalidInputError struct {
	GroupKey string
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("pipeline: group %q: invalid input: %s", e.GroupKey, e.Reason)
}

// GeometryEngineError wraps a failure from geom/geom/buffer (buffer,
// union, within) that the orchestrator could not repair locally.
type GeometryEngineError struct {
	GroupKey string
	Cause    error
}

func (e *GeometryEngineError) Error() string {
	return fmt.Sprintf("pipeline: group %q: geometry engine failure: %v", e.GroupKey, e.Cause)
}

func (e *GeometryEngineError) Unwrap() error { return e.Cause }
