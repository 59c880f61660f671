// Package prefs persists glugtail viewer preferences.
// Preferences are stored in ~/.config/glug/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/glug/internal/record"
)

// Prefs holds viewer preferences.
type Prefs struct {
	// MinLevel is the most verbose level the viewer shows.
	MinLevel record.Level
	// Follow keeps the view pinned to the newest lines.
	Follow bool
}

type filePrefs struct {
	MinLevel string `toml:"min_level"`
	Follow   *bool  `toml:"follow"`
}

const defaultPrefsPath = "~/.config/glug/prefs.toml"

// Default returns the preferences used when nothing was saved.
func Default() Prefs {
	return Prefs{MinLevel: record.LevelTrace, Follow: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults when
// the file is missing or unreadable.
func Load(path string) (Prefs, error) {
	prefs := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	var raw filePrefs
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Default(), nil // Graceful degradation
	}

	if level, err := record.ParseLevel(raw.MinLevel); err == nil {
		prefs.MinLevel = level
	}
	if raw.Follow != nil {
		prefs.Follow = *raw.Follow
	}
	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	follow := p.Follow
	bytes, err := toml.Marshal(filePrefs{
		MinLevel: strings.ToLower(p.MinLevel.String()),
		Follow:   &follow,
	})
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
