package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Plan settings
	PlanFile string

	// Output settings
	ChunkSize      int
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	PlanFile  string
	ChunkSize int
	Save      bool
	JSON      bool
	Progress  bool
	Watch     bool
	Saved     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ChunkSize:      DefaultChunkSize,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores flags and lets them override configured values
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.ChunkSize > 0 {
		c.ChunkSize = flags.ChunkSize
	}
	if flags.PlanFile != "" {
		c.PlanFile = flags.PlanFile
	}
}

// LoadEnv reads an optional env file and applies ADSCHED_* variables.
// Variables already set in the process environment win over the file.
func (c *Config) LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	if v := os.Getenv(EnvPlan); v != "" {
		c.PlanFile = v
	}
	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvChunkSize, v)
		}
		c.ChunkSize = n
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputJSONFile = v
	}
	return nil
}

// GetPlanPath returns the plan file to read, or "" for the built-in plan
func (c *Config) GetPlanPath() string {
	if c.Flags.PlanFile != "" {
		return c.Flags.PlanFile
	}
	return c.PlanFile
}

// GetChunkSize returns the number of ads per printed line, at least 1
func (c *Config) GetChunkSize() int {
	if c.ChunkSize <= 0 {
		return 1
	}
	return c.ChunkSize
}

// GetOutputPath returns the absolute path of the export file
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
