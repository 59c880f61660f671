package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/glug"
	"github.com/five82/glug/internal/record"
)

// Config is the parsed options file.
type Config struct {
	Colors             [record.LevelCount]record.Color
	SaveToFile         string
	RecordThreads      *RecordThreads
	MaxMessagesPerLoop int
	Timestamps         bool
	MinLevel           record.Level
	Viewer             Viewer
}

// RecordThreads mirrors glug.RecordThreads.
type RecordThreads struct {
	SeparateHistograms bool
	Summary            bool
}

// Viewer holds the glugtail settings.
type Viewer struct {
	File      string
	PollEvery time.Duration
	Lines     int
}

const (
	defaultConfigPath = "~/.config/glug/config.toml"
	defaultPollEvery  = time.Second
	defaultLines      = 512
)

type fileRecordThreads struct {
	SeparateHistograms bool `toml:"separate_histograms" yaml:"separate_histograms"`
	Summary            bool `toml:"summary" yaml:"summary"`
}

type fileViewer struct {
	File        string `toml:"file" yaml:"file"`
	PollSeconds int    `toml:"poll_seconds" yaml:"poll_seconds"`
	Lines       int    `toml:"lines" yaml:"lines"`
}

type fileConfig struct {
	Colors             []string           `toml:"colors" yaml:"colors"`
	SaveToFile         string             `toml:"save_to_file" yaml:"save_to_file"`
	RecordThreads      *fileRecordThreads `toml:"record_threads" yaml:"record_threads"`
	MaxMessagesPerLoop int                `toml:"max_messages_per_loop" yaml:"max_messages_per_loop"`
	Timestamps         bool               `toml:"timestamps" yaml:"timestamps"`
	MinLevel           string             `toml:"min_level" yaml:"min_level"`
	Viewer             fileViewer         `toml:"viewer" yaml:"viewer"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Colors:   record.DefaultPalette,
		MinLevel: record.LevelTrace,
		Viewer:   Viewer{PollEvery: defaultPollEvery, Lines: defaultLines},
	}
}

// Load reads the options file at path, or the default path when empty. A
// missing file yields Default. Files ending in .yaml or .yml are parsed as
// YAML, anything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.Colors) > 0 {
		if len(raw.Colors) != record.LevelCount {
			return Config{}, fmt.Errorf("colors: got %d, want one per level (%d)", len(raw.Colors), record.LevelCount)
		}
		for i, name := range raw.Colors {
			c, err := record.ParseColor(name)
			if err != nil {
				return Config{}, fmt.Errorf("colors[%d]: %w", i, err)
			}
			cfg.Colors[i] = c
		}
	}

	if p := strings.TrimSpace(raw.SaveToFile); p != "" {
		cfg.SaveToFile = mustExpand(p)
	}
	if rt := raw.RecordThreads; rt != nil {
		cfg.RecordThreads = &RecordThreads{SeparateHistograms: rt.SeparateHistograms, Summary: rt.Summary}
	}
	if raw.MaxMessagesPerLoop < 0 {
		return Config{}, fmt.Errorf("max_messages_per_loop: %d is negative", raw.MaxMessagesPerLoop)
	}
	cfg.MaxMessagesPerLoop = raw.MaxMessagesPerLoop
	cfg.Timestamps = raw.Timestamps

	if strings.TrimSpace(raw.MinLevel) != "" {
		level, err := record.ParseLevel(raw.MinLevel)
		if err != nil {
			return Config{}, fmt.Errorf("min_level: %w", err)
		}
		cfg.MinLevel = level
	}

	cfg.Viewer.File = cfg.SaveToFile
	if p := strings.TrimSpace(raw.Viewer.File); p != "" {
		cfg.Viewer.File = mustExpand(p)
	}
	if raw.Viewer.PollSeconds > 0 {
		cfg.Viewer.PollEvery = time.Duration(raw.Viewer.PollSeconds) * time.Second
	}
	if raw.Viewer.Lines > 0 {
		cfg.Viewer.Lines = raw.Viewer.Lines
	}

	return cfg, nil
}

// Options converts the file settings into logger options. Runtime-only
// fields such as Output are left for the caller.
func (c Config) Options() glug.Options {
	opts := glug.Options{
		Colors:             c.Colors,
		SaveToFile:         c.SaveToFile,
		MaxMessagesPerLoop: c.MaxMessagesPerLoop,
		Timestamps:         c.Timestamps,
		MinLevel:           c.MinLevel.SlogLevel(),
	}
	if c.RecordThreads != nil {
		opts.RecordThreads = &glug.RecordThreads{
			SeparateHistograms: c.RecordThreads.SeparateHistograms,
			Summary:            c.RecordThreads.Summary,
		}
	}
	return opts
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
