package probe

import "context"

// Prober inspects a video container for embedded subtitle streams
type Prober interface {
	SubtitleStreams(ctx context.Context, path string) ([]Stream, error)
}

// Stream describes one subtitle track inside a video container as reported
// by ffprobe. Language is normalized to "und" when the container carries no
// tag; Title is empty when untitled.
type Stream struct {
	Index    int
	Codec    string
	Language string
	Title    string
}
