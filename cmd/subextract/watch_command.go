package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"subextract/internal/deps"
	"subextract/internal/engine"
	"subextract/internal/extract"
	"subextract/internal/probe"
	"subextract/internal/watcher"
	"subextract/pkg/executor"
)

func newWatchCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a directory and extract subtitles from newly arriving videos",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := app.load()
			if err != nil {
				return err
			}

			dir := cfg.Watch.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return errors.New("no watch directory given (argument or watch.dir in config)")
			}

			exe := executor.New()
			if err := deps.NewChecker(exe).Check(); err != nil {
				return err
			}

			prober := probe.New(exe)
			extractor := extract.New(exe, log)

			// Each arriving file gets a fresh engine run; the engine is
			// single-use between resets and the watcher delivers files one
			// at a time.
			handler := func(ctx context.Context, filePath string) error {
				eng := engine.New(prober, extractor, log, newLogObserver(log))
				_, err := eng.Run(ctx, engine.Request{
					Paths:     []string{filePath},
					Language:  cfg.Extraction.Language,
					Format:    cfg.Extraction.Format,
					OutputDir: cfg.Extraction.OutputDir,
					Overwrite: cfg.Extraction.Overwrite,
				})
				return err
			}

			w, err := watcher.New(dir, handler, log, time.Duration(cfg.Watch.SettleDelayMS)*time.Millisecond)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					errChan <- err
				}
			}()

			log.Info(ctx, "Watching %s for new videos (language=%s, format=%s). Press Ctrl+C to stop",
				dir, cfg.Extraction.Language, cfg.Extraction.Format)

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			cancel()
			return nil
		},
	}

	return cmd
}
