package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

func Load(path string) (*Config, error) {
	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	// unmarshal into struct
	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Storage.Watch.Mode == "" {
		c.Storage.Watch.Mode = "poll"
	}
	if c.Storage.Watch.DebounceWindow <= 0 {
		c.Storage.Watch.DebounceWindow = 500 * time.Millisecond
	}
	if c.Sweep.CheckTimeDelay <= 0 {
		c.Sweep.CheckTimeDelay = time.Minute
	}
}

// Validate checks everything that would otherwise fail deep inside the main
// loop. The daemon refuses to start on any violation.
func (c *Config) Validate() error {
	var errs []error

	if c.Storage.Directory == "" {
		errs = append(errs, errors.New("storage.directory is required"))
	}
	if c.Archive.Directory == "" {
		errs = append(errs, errors.New("archive.directory is required"))
	}
	if c.Thresholds.FilesOldDays < 0 {
		errs = append(errs, fmt.Errorf("thresholds.filesOldDays must not be negative, got %d", c.Thresholds.FilesOldDays))
	}
	if c.Thresholds.FreeSpace < 0 || c.Thresholds.FreeSpace > 1 {
		errs = append(errs, fmt.Errorf("thresholds.freeSpace must be a fraction in [0, 1], got %g", c.Thresholds.FreeSpace))
	}

	switch c.Storage.Watch.Mode {
	case "auto", "poll", "fsnotify":
	default:
		errs = append(errs, fmt.Errorf("storage.watch.mode must be auto, poll or fsnotify, got %q", c.Storage.Watch.Mode))
	}

	if c.Sweep.Schedule != "" {
		if _, err := cron.ParseStandard(c.Sweep.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("sweep.schedule is not a valid cron expression: %w", err))
		}
	}

	return errors.Join(errs...)
}
