package probe

import (
	"context"
	"encoding/json"
	"fmt"

	"subextract/internal/language"
)

// SubtitleStreams runs a single ffprobe JSON call against path, restricted
// to subtitle streams, and returns the parsed descriptors. A failure here
// means the file contributes zero streams; it must never abort a scan.
func (p *implProber) SubtitleStreams(ctx context.Context, path string) ([]Stream, error) {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", path, err)
	}

	streams, err := ParseStreams([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", path, err)
	}
	return streams, nil
}

// ParseStreams converts raw ffprobe JSON output into Stream descriptors.
// Exported for testing without a real ffprobe binary.
func ParseStreams(data []byte) ([]Stream, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	streams := make([]Stream, 0, len(raw.Streams))
	for _, s := range raw.Streams {
		streams = append(streams, Stream{
			Index:    s.Index,
			Codec:    s.CodecName,
			Language: language.Normalize(s.Tags["language"]),
			Title:    s.Tags["title"],
		})
	}
	return streams, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	Tags      map[string]string `json:"tags"`
}
