package extract

import (
	"context"

	"subextract/internal/subformat"
)

// Extractor extracts a single subtitle stream from a video container into a
// standalone subtitle file
type Extractor interface {
	Extract(ctx context.Context, req Request) Outcome
}

// Request identifies one stream of one video file slated for extraction.
type Request struct {
	VideoPath   string
	StreamIndex int
	Language    string
	Format      subformat.Spec
	// OutputDir overrides the destination directory; empty means alongside
	// the video file.
	OutputDir string
	Overwrite bool
	// Cancelled is polled while the ffmpeg subprocess streams diagnostics;
	// when it reports true the subprocess is terminated immediately.
	Cancelled func() bool
}

// Status classifies the outcome of one extraction attempt.
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one extraction attempt. Reason is set for
// skipped and failed outcomes.
type Outcome struct {
	Status     Status
	Reason     string
	OutputPath string
}

// Reasons attached to skipped and failed outcomes.
const (
	ReasonAlreadyExists  = "already exists"
	ReasonCancelled      = "cancelled"
	ReasonFormatMismatch = "format mismatch"
	ReasonExtractionErr  = "extraction error"
)
