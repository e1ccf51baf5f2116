package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	sourcePostgres = "postgres"

	rendererNone     = "none"
	rendererTerminal = "terminal"
	rendererPNG      = "png"

	defaultAlpha = 0.05
)

// Config is everything one invocation needs: where the population comes
// from, how figures are rendered, and the analyses to run over it.
type Config struct {
	Source   string `yaml:"source"`
	Renderer string `yaml:"renderer"`
	OutDir   string `yaml:"out_dir"`
	Table    string `yaml:"table"`
	Page     int    `yaml:"page"`
	PerPage  int    `yaml:"per_page"`
	Runs     []Run  `yaml:"runs"`
}

// Run describes one analysis over the population or a strided subsample of it.
type Run struct {
	Name string `yaml:"name"`
	// Sample reports corrected variance and deviation alongside the plain ones.
	Sample      bool    `yaml:"sample"`
	Start       int     `yaml:"start"`
	Stop        int     `yaml:"stop"`
	Step        int     `yaml:"step"`
	Partition   int     `yaml:"partition"`
	Polygon     bool    `yaml:"polygon"`
	Histogram   bool    `yaml:"histogram"`
	AutoFormatX bool    `yaml:"auto_format_x"`
	Pearson     bool    `yaml:"pearson"`
	Alpha       float64 `yaml:"alpha"`
}

// loadConfigFromEnv returns the defaults, overridden by FREQSTAT_* variables.
func loadConfigFromEnv() Config {
	return Config{
		Source:   getEnvOrDefault("FREQSTAT_SOURCE", "data.txt"),
		Renderer: getEnvOrDefault("FREQSTAT_RENDERER", rendererNone),
		OutDir:   getEnvOrDefault("FREQSTAT_OUT_DIR", "plots"),
		Table:    getEnvOrDefault("FREQSTAT_TABLE", "samples"),
		Page:     getEnvIntOrDefault("FREQSTAT_PAGE", 0),
		PerPage:  getEnvIntOrDefault("FREQSTAT_PER_PAGE", 0),
	}
}

// loadPlan decodes a YAML plan on top of base. Keys absent from the file keep
// the values from base.
func loadPlan(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrapf(ErrNotFound, "plan %s", path)
		}
		return Config{}, errors.Wrapf(err, "reading plan %s failed", path)
	}
	cfg := base
	cfg.Runs = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrConfig, "plan %s: %v", path, err)
	}
	return cfg, nil
}

// normalize fills the zero values that mean "use the default".
func (c *Config) normalize() {
	if c.Renderer == "" {
		c.Renderer = rendererNone
	}
	if c.Table == "" {
		c.Table = "samples"
	}
	for i := range c.Runs {
		c.Runs[i].normalize()
	}
}

func (c Config) validate() error {
	if c.Source == "" {
		return errors.Wrap(ErrConfig, "source is required")
	}
	switch c.Renderer {
	case rendererNone, rendererTerminal, rendererPNG:
	default:
		return errors.Wrapf(ErrConfig, "unknown renderer %q", c.Renderer)
	}
	if c.Renderer == rendererPNG && c.OutDir == "" {
		return errors.Wrap(ErrConfig, "png renderer needs an output directory")
	}
	if c.Page < 0 || c.PerPage < 0 {
		return errors.Wrap(ErrConfig, "page and per_page must not be negative")
	}
	if len(c.Runs) == 0 {
		return errors.Wrap(ErrConfig, "plan has no runs")
	}
	for i, r := range c.Runs {
		if err := r.validate(); err != nil {
			return errors.Wrapf(err, "run %d", i+1)
		}
	}
	return nil
}

func (r *Run) normalize() {
	if r.Start == 0 {
		r.Start = 1
	}
	if r.Step == 0 {
		r.Step = 1
	}
	if r.Alpha == 0 {
		r.Alpha = defaultAlpha
	}
}

func (r Run) validate() error {
	if r.Start < 1 || r.Step < 1 {
		return errors.Wrap(ErrConfig, "start and step must be positive")
	}
	if r.Stop < 0 || r.Partition < 0 {
		return errors.Wrap(ErrConfig, "stop and partition must not be negative")
	}
	if r.Alpha <= 0 || r.Alpha >= 1 {
		return errors.Wrapf(ErrConfig, "alpha %v outside (0, 1)", r.Alpha)
	}
	return nil
}

// wholePopulation reports whether the run covers every element in order.
func (r Run) wholePopulation() bool {
	return r.Start == 1 && r.Step == 1 && r.Stop == 0
}

// title is the figure and heading title: subsamples are named by their step.
func (r Run) title() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Step > 1 {
		return "Sample every " + strconv.Itoa(r.Step)
	}
	return "Population"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
