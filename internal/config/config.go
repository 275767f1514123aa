package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Probe   ProbeConfig   `yaml:"probe"`
	Paths   PathsConfig   `yaml:"paths"`
	Job     JobConfig     `yaml:"job"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	// Timeout bounds a single invocation; zero waits forever
	Timeout time.Duration `yaml:"timeout"`
}

type ProbeConfig struct {
	Tool       string `yaml:"tool"` // soxi or ffprobe
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Corpus string `yaml:"corpus"`
}

// JobConfig is the operation batch and watch apply. An Amount of 0 in a
// Config built in code means "use the default"; in YAML an explicit amount
// must be positive.
type JobConfig struct {
	Operation string  `yaml:"operation"` // compress or reverse
	Amount    float64 `yaml:"amount"`
}

func (j *JobConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Operation string   `yaml:"operation"`
		Amount    *float64 `yaml:"amount"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	j.Operation = raw.Operation
	if raw.Amount != nil {
		if !(*raw.Amount > 0) {
			return fmt.Errorf("job.amount must be positive, got %v", *raw.Amount)
		}
		j.Amount = *raw.Amount
	}
	return nil
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

const (
	ProbeSoxi    = "soxi"
	ProbeFFprobe = "ffprobe"

	OperationCompress = "compress"
	OperationReverse  = "reverse"
)

// Load reads a YAML config file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	// Defaults alone always validate
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.FFmpeg.Timeout < 0 {
		return fmt.Errorf("ffmpeg.timeout must not be negative")
	}
	if c.Job.Amount < 0 {
		return fmt.Errorf("job.amount must be positive")
	}
	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("watch.settle_delay must not be negative")
	}

	switch c.Probe.Tool {
	case "":
		c.Probe.Tool = ProbeSoxi
	case ProbeSoxi, ProbeFFprobe:
	default:
		return fmt.Errorf("probe.tool must be %q or %q, got %q", ProbeSoxi, ProbeFFprobe, c.Probe.Tool)
	}

	switch c.Job.Operation {
	case "":
		c.Job.Operation = OperationCompress
	case OperationCompress, OperationReverse:
	default:
		return fmt.Errorf("job.operation must be %q or %q, got %q", OperationCompress, OperationReverse, c.Job.Operation)
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Probe.BinaryPath == "" {
		c.Probe.BinaryPath = c.Probe.Tool
	}
	if c.Job.Amount == 0 {
		c.Job.Amount = 0.5
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Corpus == "" {
		c.Paths.Corpus = "data/corpus"
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 100
	}

	return nil
}
