package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk description of a benchmark suite:
//
//	cases:
//	  - size: 100
//	    iterations: 1000
//	  - size: 200
//	    iterations: 500
//	plot:
//	  path: gauss.png
//	  title: Gauss-Jordan scaling
//
// The plot section is optional.
type Config struct {
	Cases []Case     `yaml:"cases"`
	Plot  PlotConfig `yaml:"plot"`
}

// PlotConfig names the output image and its title. An empty Path means
// no plot is wanted.
type PlotConfig struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// LoadConfig reads and validates a suite file. File and YAML problems,
// and invalid case lists, come back as errors rather than panics:
// config files are data, not code, so a bad one is a domain outcome.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("bench: parse config %s: %w", path, err)
	}

	if len(cfg.Cases) == 0 {
		return nil, fmt.Errorf("bench: config %s: %w", path, ErrNoCases)
	}
	for _, c := range cfg.Cases {
		if c.Size < 1 || c.Iterations < 1 {
			return nil, fmt.Errorf("bench: config %s: %w", path, ErrBadCase)
		}
	}

	return &cfg, nil
}
