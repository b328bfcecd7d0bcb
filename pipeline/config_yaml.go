package pipeline

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// bufferProfile is the on-disk shape of one named entry in a BufferConfig
// YAML file: the two derivation inputs plus optional overrides for any
// derived field an operator wants to pin rather than compute.
type bufferProfile struct {
	WidthPx         float64  `yaml:"width_px"`
	Zoom            int      `yaml:"zoom"`
	MaxSitesPerCell *int     `yaml:"max_sites_per_cell,omitempty"`
	LeafPruneDepthM *float64 `yaml:"leaf_prune_depth_m,omitempty"`
	TimeCoefficient *float64 `yaml:"time_coefficient,omitempty"`
	MinLengthM      *float64 `yaml:"min_length_m,omitempty"`
}

// LoadBufferConfigs reads a YAML map of named profiles (e.g. "streets",
// "motorways", "rivers") to BufferConfig overrides, letting an operator
// pin buffer parameters per feature class instead of deriving them from
// zoom/width at call time.
func LoadBufferConfigs(r io.Reader) (map[string]BufferConfig, error) {
	var raw map[string]bufferProfile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("pipeline: decode buffer config yaml: %w", err)
	}

	configs := make(map[string]BufferConfig, len(raw))
	for name, profile := range raw {
		var opts []BufferConfigOption
		if profile.MaxSitesPerCell != nil {
			opts = append(opts, WithMaxSitesPerCell(*profile.MaxSitesPerCell))
		}
		if profile.LeafPruneDepthM != nil {
			opts = append(opts, WithLeafPruneDepthM(*profile.LeafPruneDepthM))
		}
		if profile.TimeCoefficient != nil {
			opts = append(opts, WithTimeCoefficient(*profile.TimeCoefficient))
		}
		if profile.MinLengthM != nil {
			opts = append(opts, WithMinLengthM(*profile.MinLengthM))
		}
		configs[name] = NewBufferConfig(profile.WidthPx, profile.Zoom, opts...)
	}
	return configs, nil
}
