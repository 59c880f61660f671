package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/five82/glug/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override glug config path (optional)")
	file := flag.String("file", "", "log file to tail (defaults to viewer.file or save_to_file)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional, defaults to 1s)")
	prefsPath := flag.String("prefs", "", "viewer preferences file (optional)")
	summary := flag.Bool("summary", false, "print per-level counts and exit")
	flag.Parse()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		File:       *file,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if *summary || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printSummary(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "glugtail: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "glugtail: %v\n", err)
		return 1
	}
	return 0
}

func printSummary(w io.Writer, opts app.Options) error {
	snap, path, err := app.Summarize(opts)
	if err != nil {
		return err
	}
	renderSummary(w, path, snap.Counts)
	return nil
}
