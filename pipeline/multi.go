package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/skeletron-go/centerline/mercator"
	"github.com/skeletron-go/centerline/voronoi"
)

// Orchestrator fans RunGroup out across many groups concurrently, each
// worker owning its own skeleton graph and route buffers so no state is
// shared between them. A cancelled run context aborts every
// in-flight group after its current carver iteration; partial results
// for that group are discarded, not emitted.
type Orchestrator struct {
	Projector mercator.Projector
	Driver    voronoi.Driver
	DumpDir   string
	Logger    *slog.Logger
	Metrics   *Metrics

	// Concurrency bounds the number of groups processed at once. Zero or
	// a negative value means unbounded.
	Concurrency int
}

// Run processes every group in groups, each against its own BufferConfig
// selected by configFor, and returns the successful results. Groups that
// fail with an InvalidInputError or GeometryEngineError or
// CarverOvertimeError are logged and omitted from the result, and groups
// that end with ErrEmptyResult are omitted silently (VoronoiFailure is
// recovered even lower, inside RunGroup itself). Any other error from a
// group is returned by Run with no results, and cancels the context of
// the groups still running.
//
// Output ordering is deterministic: results are sorted lexicographically
// on their key tuple regardless of completion order.
func (o *Orchestrator) Run(ctx context.Context, groups []Group, configFor func(Group) BufferConfig) ([]Result, error) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var (
		mu      sync.Mutex
		results []Result
	)

	g, gctx := errgroup.WithContext(ctx)
	if o.Concurrency > 0 {
		g.SetLimit(o.Concurrency)
	}

	for _, group := range groups {
		group := group
		g.Go(func() error {
			cfg := configFor(group)
			result, err := RunGroup(gctx, o.Projector, group, cfg, o.Driver, o.DumpDir, logger, o.Metrics)
			if err != nil {
				if errors.Is(err, ErrEmptyResult) {
					return nil
				}
				var overtime *CarverOvertimeError
				var invalid *InvalidInputError
				var geomErr *GeometryEngineError
				if errors.As(err, &overtime) || errors.As(err, &invalid) || errors.As(err, &geomErr) {
					logger.Warn("group failed, skipping", slog.String("group", groupLabel(group.Key)), slog.Any("error", err))
					return nil
				}
				return err
			}

			mu.Lock()
			results = append(results, *result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return strings.Join(results[i].Key, "\x00") < strings.Join(results[j].Key, "\x00")
	})
	return results, nil
}
