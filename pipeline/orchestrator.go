package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skeletron-go/centerline/carver"
	"github.com/skeletron-go/centerline/dump"
	"github.com/skeletron-go/centerline/geom"
	"github.com/skeletron-go/centerline/geom/buffer"
	"github.com/skeletron-go/centerline/mercator"
	"github.com/skeletron-go/centerline/partition"
	"github.com/skeletron-go/centerline/skeleton"
	"github.com/skeletron-go/centerline/voronoi"
)

// minSitesPerPart skips a polygon part with too few perimeter sites to be
// worth skeletonizing.
const minSitesPerPart = 4

// RunGroup runs the single-group pipeline: project, buffer, densify,
// partition, skeletonize, carve, and simplify. It returns ErrEmptyResult
// (not wrapped as any of the typed errors) when no route survives the
// min_length filter — the caller treats that as "no output", not a
// failure. A Voronoi failure never aborts RunGroup: it is logged and
// dumped per-subdivision and that subdivision is skipped. A carver
// overtime aborts the whole group and is returned to the caller as a
// CarverOvertimeError.
func RunGroup(ctx context.Context, projector mercator.Projector, group Group, cfg BufferConfig, driver voronoi.Driver, dumpDir string, logger *slog.Logger, metrics *Metrics) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	label := groupLabel(group.Key)

	planar, err := projectLines(projector, group.LonLat)
	if err != nil {
		return nil, &InvalidInputError{GroupKey: label, Reason: err.Error()}
	}

	buffered, err := buffer.Buffer(planar, cfg.BufferM)
	if err != nil {
		return nil, &GeometryEngineError{GroupKey: label, Cause: err}
	}

	var routes []geom.Polyline
	var skipped []*VoronoiFailureError
	for _, polygon := range buffered.Parts {
		var sites []geom.Point
		for _, ring := range polygon.Rings() {
			densified, err := geom.Densify(geom.Polyline(ring), cfg.DensityM)
			if err != nil {
				return nil, &GeometryEngineError{GroupKey: label, Cause: err}
			}
			sites = append(sites, densified...)
		}
		if len(sites) <= minSitesPerPart {
			continue
		}

		subdivisions, err := partition.PartitionIfLarge(polygon, sites, cfg.MaxSitesPerCell, cfg.BufferM)
		if err != nil {
			return nil, &GeometryEngineError{GroupKey: label, Cause: err}
		}

		for _, sub := range subdivisions {
			diagram, err := driver.Compute(ctx, sub.Sites)
			if err != nil {
				dumpPath, dumpErr := dump.WriteVoronoiFailure(dumpDir, err, cfg.DensityM, sub.Polygon)
				if dumpErr != nil {
					dumpPath = fmt.Sprintf("<dump failed: %v>", dumpErr)
				}
				failure := &VoronoiFailureError{GroupKey: label, Cause: err, DumpPath: dumpPath}
				logger.Warn("voronoi driver failed, skipping subdivision",
					slog.String("group", label), slog.String("dump", dumpPath), slog.Any("error", err))
				if metrics != nil {
					metrics.VoronoiFailures.Inc()
				}
				skipped = append(skipped, failure)
				continue
			}

			g := skeleton.Build(sub.Polygon, diagram)
			skeleton.Prune(g, cfg.LeafPruneDepthM)

			if components := skeleton.ConnectedComponents(g); len(components) > 1 {
				logger.Debug("skeleton has disconnected pieces",
					slog.String("group", label), slog.Int("components", len(components)))
			}

			deadline := carver.Deadline(g.NodeCount(), cfg.TimeCoefficient)
			carveCtx, cancel := context.WithTimeout(ctx, deadline)
			carved, err := carver.Carve(carveCtx, g.Clone(), true, cfg.MinLengthM)
			cancel()
			if err != nil {
				dumpPath, dumpErr := dump.WriteGraphOvertime(dumpDir, label, toGraphDump(g))
				if dumpErr != nil {
					dumpPath = fmt.Sprintf("<dump failed: %v>", dumpErr)
				}
				logger.Warn("carver overtime, discarding group",
					slog.String("group", label), slog.String("dump", dumpPath), slog.Any("error", err))
				if metrics != nil {
					metrics.CarverOvertimes.Inc()
				}
				return nil, &CarverOvertimeError{GroupKey: label, Cause: err, DumpPath: dumpPath}
			}

			for _, route := range carved {
				simplified, err := geom.SimplifyVW(route.Points, cfg.MinAreaM2)
				if err != nil {
					return nil, &GeometryEngineError{GroupKey: label, Cause: err}
				}
				routes = append(routes, simplified)
			}
		}
	}

	if len(routes) == 0 {
		if metrics != nil {
			metrics.GroupsProcessed.Inc()
		}
		return nil, ErrEmptyResult
	}

	lonLatParts := make([]geom.Polyline, 0, len(routes))
	for _, route := range routes {
		unprojected, err := projector.UnprojectPolyline(route)
		if err != nil {
			return nil, &GeometryEngineError{GroupKey: label, Cause: err}
		}
		lonLatParts = append(lonLatParts, unprojected)
	}
	lonLat, err := geom.NewMultiPolyline(lonLatParts)
	if err != nil {
		return nil, &GeometryEngineError{GroupKey: label, Cause: err}
	}

	if metrics != nil {
		metrics.GroupsProcessed.Inc()
		metrics.RoutesEmitted.Add(float64(len(routes)))
	}
	logger.Debug("group carved", slog.String("group", label), slog.Int("routes", len(routes)))

	return &Result{Key: group.Key, LonLat: lonLat, Skipped: skipped}, nil
}

func projectLines(projector mercator.Projector, lonLat geom.MultiPolyline) (geom.MultiPolyline, error) {
	parts := make([]geom.Polyline, 0, len(lonLat.Parts))
	for _, part := range lonLat.Parts {
		parts = append(parts, projector.ProjectPolyline(part))
	}
	return geom.NewMultiPolyline(parts)
}
