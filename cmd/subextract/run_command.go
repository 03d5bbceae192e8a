package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"subextract/internal/deps"
	"subextract/internal/engine"
	"subextract/internal/extract"
	"subextract/internal/probe"
	"subextract/pkg/executor"
)

func newRunCommand(app *appContext) *cobra.Command {
	var languageFlag string
	var formatFlag string
	var outputFlag string
	var overwriteFlag bool

	cmd := &cobra.Command{
		Use:   "run [path...]",
		Short: "Extract matching subtitle streams from videos under the given paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := app.load()
			if err != nil {
				return err
			}

			// Config supplies defaults; flags the user actually set win.
			req := engine.Request{
				Paths:     args,
				Language:  cfg.Extraction.Language,
				Format:    cfg.Extraction.Format,
				OutputDir: cfg.Extraction.OutputDir,
				Overwrite: cfg.Extraction.Overwrite,
			}
			if cmd.Flags().Changed("language") {
				req.Language = languageFlag
			}
			if cmd.Flags().Changed("format") {
				req.Format = formatFlag
			}
			if cmd.Flags().Changed("output-dir") {
				req.OutputDir = outputFlag
			}
			if cmd.Flags().Changed("overwrite") {
				req.Overwrite = overwriteFlag
			}

			exe := executor.New()
			if err := deps.NewChecker(exe).Check(); err != nil {
				return err
			}

			eng := engine.New(probe.New(exe), extract.New(exe, log), log, newLogObserver(log))

			// SIGINT requests a graceful cancel; the engine winds down
			// after its current unit of work.
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			done := make(chan struct{})
			go func() {
				select {
				case <-sigChan:
					eng.Cancel()
				case <-done:
				}
			}()
			defer func() {
				signal.Stop(sigChan)
				close(done)
			}()

			summary, err := eng.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(renderSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "eng", "Subtitle language tag to match")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "SRT", "Output subtitle format")
	cmd.Flags().StringVarP(&outputFlag, "output-dir", "o", "", "Directory for extracted subtitles (default: next to each video)")
	cmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Overwrite existing subtitle files")

	return cmd
}

func renderSummary(s engine.Summary) string {
	status := "completed"
	if s.Cancelled {
		status = "cancelled"
	}
	return renderTable(
		[]string{"Job", "Status", "Files", "Streams", "Processed", "Succeeded", "Failed", "Skipped", "Elapsed"},
		[][]string{{
			s.JobID,
			status,
			strconv.Itoa(s.FilesScanned),
			strconv.Itoa(s.TotalStreams),
			strconv.Itoa(s.Processed),
			strconv.Itoa(s.Succeeded),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Skipped),
			s.Elapsed.Round(time.Millisecond).String(),
		}},
	)
}
