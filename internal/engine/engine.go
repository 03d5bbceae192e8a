package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"subextract/internal/extract"
	"subextract/internal/language"
	"subextract/internal/subformat"
)

// ErrNotIdle is returned by Run while another run is active or a finished
// run has not been reset.
var ErrNotIdle = errors.New("engine is not idle")

// ErrNotFinished is returned by Reset unless the engine is in a terminal
// state.
var ErrNotFinished = errors.New("engine has no finished run to reset")

// Run executes one batch job: validate the format, enumerate video files,
// scan for matching subtitle streams, then extract each match in discovery
// order. Per-file probe errors and per-task extraction failures are
// absorbed into counters; the only errors returned are structural ones
// raised before any work starts.
func (e *implEngine) Run(ctx context.Context, req Request) (Summary, error) {
	format, err := subformat.Lookup(req.Format)
	if err != nil {
		return Summary{}, err
	}
	lang := language.Normalize(req.Language)

	if err := e.begin(); err != nil {
		return Summary{}, err
	}

	start := time.Now()
	jobID := uuid.NewString()
	e.observer.OnLog(fmt.Sprintf("Job %s: extracting %s subtitles as %s", jobID, language.DisplayName(lang), format.Name))

	files, err := DiscoverVideos(req.Paths)
	if err != nil {
		e.setState(StateCompleted)
		return Summary{}, fmt.Errorf("discover video files: %w", err)
	}
	if len(files) == 0 {
		e.observer.OnLog("No video files found in the selected directories")
	} else {
		e.observer.OnLog(fmt.Sprintf("Found %d video files", len(files)))
	}

	tasks, scanned, cancelled := e.scan(ctx, files, lang)
	e.total = len(tasks)

	if !cancelled {
		if len(tasks) == 0 {
			e.observer.OnLog(fmt.Sprintf("No subtitle streams found matching language '%s'", lang))
		} else {
			e.observer.OnLog(fmt.Sprintf("Found %d subtitle streams matching language '%s'", len(tasks), lang))
			e.setState(StateExtracting)
			cancelled = e.extractAll(ctx, tasks, lang, format, req)
		}
	}

	summary := Summary{
		JobID:        jobID,
		Cancelled:    cancelled,
		FilesScanned: scanned,
		TotalStreams: e.total,
		Processed:    e.processed,
		Succeeded:    e.succeeded,
		Failed:       e.failed,
		Skipped:      e.skipped,
		Elapsed:      time.Since(start),
	}

	if cancelled {
		e.setState(StateCancelled)
		e.observer.OnLog(fmt.Sprintf("Extraction cancelled after processing %d/%d subtitle streams", summary.Processed, summary.TotalStreams))
	} else {
		e.setState(StateCompleted)
		e.observer.OnLog(fmt.Sprintf("Done: %d processed, %d succeeded, %d failed, %d skipped in %s",
			summary.Processed, summary.Succeeded, summary.Failed, summary.Skipped, summary.Elapsed.Round(time.Millisecond)))
	}
	e.observer.OnFinished(summary)

	return summary, nil
}

// scan probes each file and collects tasks for streams whose language
// matches. A probe failure downgrades to a warning; the file contributes
// zero tasks and the scan continues.
func (e *implEngine) scan(ctx context.Context, files []string, lang string) (tasks []Task, scanned int, cancelled bool) {
	for _, file := range files {
		if e.cancel.Load() {
			return tasks, scanned, true
		}

		streams, err := e.prober.SubtitleStreams(ctx, file)
		if err != nil {
			e.logger.Warn(ctx, "Probe failed for %s: %v", file, err)
			e.observer.OnLog(fmt.Sprintf("WARNING: cannot probe %s, skipping", filepath.Base(file)))
			streams = nil
		}

		for _, s := range streams {
			if s.Language == lang {
				tasks = append(tasks, Task{Video: file, Stream: s})
			}
		}

		scanned++
		e.observer.OnScanProgress(len(tasks), scanned)
	}
	return tasks, scanned, e.cancel.Load()
}

// extractAll processes tasks strictly one at a time in discovery order,
// recording each outcome before emitting progress.
func (e *implEngine) extractAll(ctx context.Context, tasks []Task, lang string, format subformat.Spec, req Request) (cancelled bool) {
	for _, task := range tasks {
		if e.cancel.Load() {
			return true
		}

		outcome := e.extractor.Extract(ctx, extract.Request{
			VideoPath:   task.Video,
			StreamIndex: task.Stream.Index,
			Language:    lang,
			Format:      format,
			OutputDir:   req.OutputDir,
			Overwrite:   req.Overwrite,
			Cancelled:   e.cancel.Load,
		})
		e.record(task, lang, format, outcome)

		e.processed++
		e.observer.OnExtractProgress(e.processed, e.total)
	}
	return e.cancel.Load()
}

func (e *implEngine) record(task Task, lang string, format subformat.Spec, outcome extract.Outcome) {
	base := strings.TrimSuffix(filepath.Base(task.Video), filepath.Ext(task.Video))

	switch outcome.Status {
	case extract.StatusSuccess:
		e.succeeded++
		e.observer.OnLog(fmt.Sprintf("SUCCESS: Extracted %s subtitle for %s [%s]", format.Name, base, lang))
	case extract.StatusSkipped:
		e.skipped++
		e.observer.OnLog(fmt.Sprintf("SKIPPED: Subtitle file already exists for %s [%s]", base, lang))
	case extract.StatusFailed:
		e.failed++
		e.observer.OnLog(fmt.Sprintf("ERROR: Failed to extract subtitle from %s [%s]: %s", base, lang, outcome.Reason))
	}
}

// Cancel requests cancellation. It is idempotent, never blocks, and takes
// effect at the next checkpoint: before a file probe, before a task
// dispatch, or inside the extractor's subprocess output loop.
func (e *implEngine) Cancel() {
	if e.cancel.CompareAndSwap(false, true) {
		e.logger.Info(context.Background(), "Cancellation requested, waiting for current task to finish")
	}
}

// Reset returns a finished engine to idle so it can run again. Only legal
// from the completed or cancelled states.
func (e *implEngine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateCompleted && e.state != StateCancelled {
		return ErrNotFinished
	}

	e.state = StateIdle
	e.cancel.Store(false)
	e.total, e.processed, e.succeeded, e.failed, e.skipped = 0, 0, 0, 0, 0
	return nil
}

// State reports the current lifecycle state.
func (e *implEngine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// begin transitions Idle -> Scanning and zeroes the job counters.
func (e *implEngine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle {
		return ErrNotIdle
	}

	e.state = StateScanning
	e.cancel.Store(false)
	e.total, e.processed, e.succeeded, e.failed, e.skipped = 0, 0, 0, 0, 0
	return nil
}

func (e *implEngine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}
