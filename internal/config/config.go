// Package config loads the HCL settings file of the set-odds command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Defaults used when the file or a field is missing.
const (
	DefaultVariant          = "classic"
	DefaultTrials           = 100000
	DefaultWorkers          = 16
	DefaultBuffer           = 100
	DefaultProgressInterval = "2s"
	DefaultLogLevel         = "info"
)

// Variants lists the accepted values of analysis.variant.
var Variants = []string{"classic", "projective"}

// Config is the complete settings file.
type Config struct {
	Analysis *AnalysisSettings `hcl:"analysis,block"`
	Log      *LogSettings      `hcl:"log,block"`
}

// AnalysisSettings configures a harness run.
type AnalysisSettings struct {
	Variant          string `hcl:"variant,optional"`
	Trials           int    `hcl:"trials,optional"`
	Workers          int    `hcl:"workers,optional"`
	Buffer           int    `hcl:"buffer,optional"`
	Seed             int64  `hcl:"seed,optional"` // 0 picks a random seed
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// LogSettings configures the command's logger.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields Default(); fields left out of
// the file take their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Analysis == nil {
		c.Analysis = &AnalysisSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}

	a := c.Analysis
	if a.Variant == "" {
		a.Variant = DefaultVariant
	}
	if a.Trials == 0 {
		a.Trials = DefaultTrials
	}
	if a.Workers == 0 {
		a.Workers = DefaultWorkers
	}
	if a.Buffer == 0 {
		a.Buffer = DefaultBuffer
	}
	if a.ProgressInterval == "" {
		a.ProgressInterval = DefaultProgressInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	a := c.Analysis
	if !isVariant(a.Variant) {
		return fmt.Errorf("%w: unknown variant %q (want one of %v)", ErrInvalid, a.Variant, Variants)
	}
	if a.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalid, a.Trials)
	}
	if a.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, a.Workers)
	}
	if a.Buffer < 0 {
		return fmt.Errorf("%w: buffer must not be negative, got %d", ErrInvalid, a.Buffer)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Interval returns the parsed progress interval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Analysis.ProgressInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: progress_interval: %v", ErrInvalid, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: progress_interval must not be negative, got %s", ErrInvalid, d)
	}
	return d, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return level, nil
}

func isVariant(name string) bool {
	for _, v := range Variants {
		if v == name {
			return true
		}
	}
	return false
}
