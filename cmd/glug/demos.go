package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/five82/glug"
)

var levels = []slog.Level{glug.SlogLevelTrace, slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

func randomLevel() slog.Level {
	return levels[rand.IntN(len(levels))]
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newMessagesCmd(flags *rootFlags) *cobra.Command {
	var (
		count int
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Log a steady stream of short messages at random levels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return flags.demo(nil, func(*glug.Logger) error {
				for i := 0; i < count; i++ {
					slog.Log(ctx, randomLevel(), "log message")
					if err := sleep(ctx, delay); err != nil {
						return nil
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 250, "number of messages")
	cmd.Flags().DurationVar(&delay, "delay", 25*time.Millisecond, "pause between messages")
	return cmd
}

func newLongCmd(flags *rootFlags) *cobra.Command {
	var (
		count  int
		repeat int
	)
	cmd := &cobra.Command{
		Use:   "long",
		Short: "Log messages long enough to wrap across several rows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			msg := strings.Repeat("log message ", repeat)
			return flags.demo(nil, func(*glug.Logger) error {
				for i := 0; i < count; i++ {
					slog.Log(ctx, randomLevel(), msg)
					if err := sleep(ctx, 5*time.Millisecond); err != nil {
						return nil
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 50, "number of messages")
	cmd.Flags().IntVar(&repeat, "repeat", 100, "times the phrase repeats per message")
	return cmd
}

func newBurstCmd(flags *rootFlags) *cobra.Command {
	var (
		producers int
		each      int
	)
	cmd := &cobra.Command{
		Use:   "burst",
		Short: "Log from several producers at once with per-producer histograms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adjust := func(o *glug.Options) {
				o.RecordThreads = &glug.RecordThreads{SeparateHistograms: true, Summary: true}
			}
			return flags.demo(adjust, func(*glug.Logger) error {
				g, ctx := errgroup.WithContext(cmd.Context())
				for p := 0; p < producers; p++ {
					logger := slog.Default().With(glug.ProducerKey, fmt.Sprintf("producer-%d", p))
					g.Go(func() error {
						for i := 0; i < each; i++ {
							logger.Log(ctx, randomLevel(), "log message", "seq", i)
						}
						return sleep(ctx, 25*time.Millisecond)
					})
				}
				if err := g.Wait(); err != nil && ctx.Err() == nil {
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&producers, "producers", "p", 5, "concurrent producers")
	cmd.Flags().IntVarP(&each, "count", "n", 100, "messages per producer")
	return cmd
}

func newThreadsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "threads",
		Short: "Log from a named goroutine and the main goroutine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adjust := func(o *glug.Options) {
				o.RecordThreads = &glug.RecordThreads{}
			}
			return flags.demo(adjust, func(l *glug.Logger) error {
				done := make(chan struct{})
				go func() {
					defer close(done)
					ctx := glug.WithProducer(cmd.Context(), "spawned thread")
					slog.InfoContext(ctx, "hello from spawned thread!")
				}()
				l.SubmitNamed("main", "hello from main!", glug.LevelInfo)
				<-done
				return nil
			})
		},
	}
}

func newFileCmd(flags *rootFlags) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Mirror records into a log file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adjust := func(o *glug.Options) {
				if path != "" {
					o.SaveToFile = path
				}
			}
			return flags.demo(adjust, func(l *glug.Logger) error {
				slog.Info("logged a message")
				slog.Log(cmd.Context(), glug.SlogLevelTrace, "logged another message")
				l.Flush()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&path, "path", "glug.log", "file receiving the records")
	return cmd
}
