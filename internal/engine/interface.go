package engine

import (
	"context"
	"time"

	"subextract/internal/probe"
)

// Engine orchestrates a batch subtitle extraction job: discover video
// files, probe each for matching subtitle streams, extract every match.
// Run is synchronous; the caller decides whether to push it onto its own
// goroutine. Cancel may be called from any goroutine.
type Engine interface {
	Run(ctx context.Context, req Request) (Summary, error)
	Cancel()
	Reset() error
	State() State
}

// Request carries the user's selections for one run.
type Request struct {
	// Paths are directories to walk recursively; a path naming a video
	// file directly is included as-is. Duplicates are collapsed.
	Paths []string
	// Language is the subtitle language tag to match, e.g. "eng".
	Language string
	// Format is the output format name, resolved against the subformat
	// table before any work starts.
	Format string
	// OutputDir overrides the destination directory; empty means next to
	// each video file.
	OutputDir string
	Overwrite bool
}

// Task is one (video file, subtitle stream) pair slated for extraction.
type Task struct {
	Video  string
	Stream probe.Stream
}

// Summary is the immutable result snapshot handed to the observer and
// returned from Run.
type Summary struct {
	JobID        string
	Cancelled    bool
	FilesScanned int
	TotalStreams int
	Processed    int
	Succeeded    int
	Failed       int
	Skipped      int
	Elapsed      time.Duration
}

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateScanning
	StateExtracting
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateExtracting:
		return "extracting"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
