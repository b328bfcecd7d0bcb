package pipeline_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skeletron-go/centerline/pipeline"
)

func TestNewBufferConfig_DerivesFromWidthAndZoom(t *testing.T) {
	cfg := pipeline.NewBufferConfig(15, 12)

	expectedBufferM := 15.0 / 2 * (2 * math.Pi * 6378137.0) / math.Pow(2, 20)
	assert.InDelta(t, expectedBufferM, cfg.BufferM, 1e-9)
	assert.InDelta(t, cfg.BufferM/2, cfg.DensityM, 1e-12)
	assert.InDelta(t, 8*cfg.BufferM, cfg.MinLengthM, 1e-9)
	assert.InDelta(t, cfg.BufferM*cfg.BufferM/4, cfg.MinAreaM2, 1e-9)
	assert.Equal(t, 5000, cfg.MaxSitesPerCell)
	assert.Equal(t, 20.0, cfg.LeafPruneDepthM)
	assert.Equal(t, 0.02, cfg.TimeCoefficient)
}

func TestNewBufferConfig_OptionsOverrideDerivedFields(t *testing.T) {
	cfg := pipeline.NewBufferConfig(15, 12,
		pipeline.WithMaxSitesPerCell(100),
		pipeline.WithLeafPruneDepthM(5),
		pipeline.WithTimeCoefficient(0.5),
		pipeline.WithMinLengthM(42),
	)

	assert.Equal(t, 100, cfg.MaxSitesPerCell)
	assert.Equal(t, 5.0, cfg.LeafPruneDepthM)
	assert.Equal(t, 0.5, cfg.TimeCoefficient)
	assert.Equal(t, 42.0, cfg.MinLengthM)
}

func TestLoadBufferConfigs_ParsesNamedProfiles(t *testing.T) {
	yamlDoc := `
streets:
  width_px: 15
  zoom: 12
motorways:
  width_px: 30
  zoom: 12
  max_sites_per_cell: 2000
`
	configs, err := pipeline.LoadBufferConfigs(strings.NewReader(yamlDoc))
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(configs, 2)
	assert.InDelta(configs["streets"].BufferM*2, configs["motorways"].BufferM, 1e-9)
	assert.Equal(2000, configs["motorways"].MaxSitesPerCell)
	assert.Equal(5000, configs["streets"].MaxSitesPerCell)
}
