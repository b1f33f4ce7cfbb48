package bench

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the knobs for a suite run. Zero values are filled in with
// the defaults below, which mirror the canonical comparison workload:
// prime table capacities, dataset sizes from 100 to 50000, and a batch of
// 1000 search keys drawn from the same key range as the data.
type Config struct {
	TableSizes []int   `yaml:"table_sizes"` // chained table capacities (primes)
	DataSizes  []int   `yaml:"data_sizes"`  // keys inserted per dataset
	SearchKeys int     `yaml:"search_keys"` // size of the search batch
	KeyMin     int     `yaml:"key_min"`     // Default: 1
	KeyMax     int     `yaml:"key_max"`     // Default: 1000000
	Headroom   float64 `yaml:"headroom"`    // open table sizing target load, Default: 0.65
	Seed       int64   `yaml:"seed"`        // Default: 1
	Output     string  `yaml:"output"`      // Default: results.csv
	Baselines  bool    `yaml:"baselines"`   // also time third-party engines
}

// NewConfig returns a Config with every default filled in.
func NewConfig() *Config {
	var cfg Config
	cfg.checkDefault()
	return &cfg
}

// LoadConfig reads a yaml config file and fills in defaults for anything
// the file leaves out.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.checkDefault()
	return &cfg, nil
}

func (cfg *Config) checkDefault() {
	if len(cfg.TableSizes) == 0 {
		cfg.TableSizes = []int{29, 97, 251, 499, 911}
	}
	if len(cfg.DataSizes) == 0 {
		cfg.DataSizes = []int{100, 500, 1000, 5000, 10000, 50000}
	}
	if cfg.SearchKeys <= 0 {
		cfg.SearchKeys = 1000
	}
	if cfg.KeyMin <= 0 {
		cfg.KeyMin = 1
	}
	if cfg.KeyMax <= cfg.KeyMin {
		cfg.KeyMax = 1000000
	}
	if cfg.Headroom <= 0 || cfg.Headroom >= 1 {
		cfg.Headroom = 0.65
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Output == "" {
		cfg.Output = "results.csv"
	}
}
