// Package config holds the ilstsp run configuration: a YAML file whose values
// can be overridden from the command line.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ilstsp/tsp"
)

// Config is the unified run configuration.
type Config struct {
	// Problem is the path of a TSPLIB EUC_2D file. Ignored when Cities is set.
	Problem string `yaml:"problem,omitempty"`
	// Cities lists inline coordinates; city i is Cities[i].
	Cities [][2]float64 `yaml:"cities,omitempty"`
	// Label names the run in logs and figures. Defaults to the instance name.
	Label string `yaml:"label,omitempty"`

	Seed           int64  `yaml:"seed"`
	IterationLimit int    `yaml:"iteration_limit"`
	IdleLimit      int    `yaml:"idle_limit"`
	Constructor    string `yaml:"constructor"`
	Runs           int    `yaml:"runs"`

	// LowerBound reports the Held–Karp gap of the best tour after the series.
	LowerBound bool `yaml:"lower_bound,omitempty"`

	Output Output `yaml:"output"`
}

// Output selects where results go. Empty fields disable the output.
type Output struct {
	CSVDir          string `yaml:"csv_dir,omitempty"`
	SQLite          string `yaml:"sqlite,omitempty"`
	FiguresDir      string `yaml:"figures_dir,omitempty"`
	ConvergenceHTML string `yaml:"convergence_html,omitempty"`
}

// Default returns the solver defaults with the CSV log and figures under
// ./logs and ./figures.
func Default() *Config {
	def := tsp.DefaultOptions()

	return &Config{
		IterationLimit: def.IterationLimit,
		IdleLimit:      def.IdleLimit,
		Constructor:    def.Constructor.String(),
		Runs:           1,
		Output: Output{
			CSVDir:     "logs",
			FiguresDir: "figures",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the solver settings. A missing problem source is not an
// error here; the host reports it once flags are applied.
func (c *Config) Validate() error {
	if c.IterationLimit < 1 {
		return fmt.Errorf("%w: iteration_limit must be >= 1, got %d", tsp.ErrIterationLimit, c.IterationLimit)
	}
	if c.IdleLimit < 1 {
		return fmt.Errorf("%w: idle_limit must be >= 1, got %d", tsp.ErrIdleLimit, c.IdleLimit)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be >= 1, got %d", tsp.ErrRunCount, c.Runs)
	}
	if _, err := tsp.ParseConstructorKind(c.Constructor); err != nil {
		return err
	}

	return nil
}

// Options converts the solver settings to tsp.Options.
func (c *Config) Options() (tsp.Options, error) {
	if err := c.Validate(); err != nil {
		return tsp.Options{}, err
	}
	kind, _ := tsp.ParseConstructorKind(c.Constructor)

	opts := tsp.DefaultOptions()
	opts.IterationLimit = c.IterationLimit
	opts.IdleLimit = c.IdleLimit
	opts.Constructor = kind
	opts.Seed = c.Seed

	return opts, nil
}

// HasProblem reports whether a problem source is configured.
func (c *Config) HasProblem() bool {
	return c.Problem != "" || len(c.Cities) > 0
}
