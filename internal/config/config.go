package config

import "time"

type Config struct {
	Storage    StorageConfig   `yaml:"storage"`
	Archive    ArchiveConfig   `yaml:"archive"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Sweep      SweepConfig     `yaml:"sweep"`
	Logging    LoggingConfig   `yaml:"logging"`
}

type StorageConfig struct {
	Directory string      `yaml:"directory"`
	Watch     WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Mode           string        `yaml:"mode"`           // "auto", "poll", "fsnotify"
	DebounceWindow time.Duration `yaml:"debounceWindow"` // e.g. 500ms
}

type ArchiveConfig struct {
	Directory string `yaml:"directory"`
}

type ThresholdConfig struct {
	FilesOldDays int     `yaml:"filesOldDays"` // minimum age before a file is evictable
	FreeSpace    float64 `yaml:"freeSpace"`    // evict only while free/total is below this fraction
}

type SweepConfig struct {
	CheckTimeDelay time.Duration `yaml:"checkTimeDelay"` // interval between sweeps
	Schedule       string        `yaml:"schedule"`       // optional cron expression for extra sweeps
}

type LoggingConfig struct {
	File   string `yaml:"file"`   // empty = stderr
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}
