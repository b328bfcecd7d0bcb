package pipeline

import "math"

// earthRadiusM is the sphere radius the planar projector (package mercator)
// and the buffer-width derivation below both assume.
const earthRadiusM = 6378137.0

// BufferConfig collects every tunable of the extraction pipeline, all but
// two (WidthPx, Zoom) derived from the width/zoom formulas below. Build
// one with NewBufferConfig rather than the struct literal so the derived
// fields always stay consistent with WidthPx/Zoom.
type BufferConfig struct {
	WidthPx float64
	Zoom    int

	BufferM         float64
	DensityM        float64
	MinLengthM      float64
	MinAreaM2       float64
	MaxSitesPerCell int
	LeafPruneDepthM float64
	TimeCoefficient float64
}

// BufferConfigOption overrides one derived field of a BufferConfig after
// the zoom/width-driven defaults have been computed.
type BufferConfigOption func(*BufferConfig)

// WithMaxSitesPerCell overrides the partitioner's recursion threshold.
func WithMaxSitesPerCell(n int) BufferConfigOption {
	return func(c *BufferConfig) { c.MaxSitesPerCell = n }
}

// WithLeafPruneDepthM overrides the skeleton builder's leaf-pruning depth.
func WithLeafPruneDepthM(depthM float64) BufferConfigOption {
	return func(c *BufferConfig) { c.LeafPruneDepthM = depthM }
}

// WithTimeCoefficient overrides the carver watchdog's seconds-per-node
// coefficient.
func WithTimeCoefficient(coefficient float64) BufferConfigOption {
	return func(c *BufferConfig) { c.TimeCoefficient = coefficient }
}

// WithMinLengthM overrides the minimum route length filter directly,
// bypassing its 8*buffer_m default.
func WithMinLengthM(minLengthM float64) BufferConfigOption {
	return func(c *BufferConfig) { c.MinLengthM = minLengthM }
}

// NewBufferConfig derives a full BufferConfig from a line width in pixels
// and a Slippy-map zoom level. Defaults for street-scale extraction are
// zoom=12, widthPx=15.
func NewBufferConfig(widthPx float64, zoom int, opts ...BufferConfigOption) BufferConfig {
	bufferM := widthPx / 2 * (2 * math.Pi * earthRadiusM) / math.Pow(2, float64(zoom+8))

	cfg := BufferConfig{
		WidthPx:         widthPx,
		Zoom:            zoom,
		BufferM:         bufferM,
		DensityM:        bufferM / 2,
		MinLengthM:      8 * bufferM,
		MinAreaM2:       bufferM * bufferM / 4,
		MaxSitesPerCell: 5000,
		LeafPruneDepthM: 20,
		TimeCoefficient: 0.02,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
