package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/glug/internal/config"
	"github.com/five82/glug/internal/prefs"
	"github.com/five82/glug/internal/state"
	"github.com/five82/glug/internal/ui"
)

// Options configure the glugtail application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/glug/prefs.toml
	File       string // overrides the configured file
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the viewer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load glug config: %w", err)
	}

	tail, err := resolveTail(cfg, opts)
	if err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store := &state.Store{}

	interval := cfg.Viewer.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Populate the store before the UI draws its first frame.
	_ = refresh(store, tail)
	StartPoller(ctx, store, tail, interval)

	return ui.Run(ui.Options{
		Store:     store,
		File:      tail.Path,
		Palette:   cfg.Colors,
		PollTick:  interval,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// Summarize reads the file once and returns the statistics without starting
// the UI.
func Summarize(opts Options) (state.Snapshot, string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return state.Snapshot{}, "", fmt.Errorf("load glug config: %w", err)
	}
	tail, err := resolveTail(cfg, opts)
	if err != nil {
		return state.Snapshot{}, "", err
	}
	var store state.Store
	if err := refresh(&store, tail); err != nil {
		return state.Snapshot{}, tail.Path, err
	}
	return store.Snapshot(), tail.Path, nil
}

func resolveTail(cfg config.Config, opts Options) (Tail, error) {
	path := cfg.Viewer.File
	if opts.File != "" {
		path = opts.File
	}
	if path == "" {
		return Tail{}, fmt.Errorf("no log file: set save_to_file or viewer.file in the config, or pass -file")
	}
	return Tail{Path: path, Lines: cfg.Viewer.Lines}, nil
}
