// Package subformat holds the fixed table of supported subtitle output
// formats and the ffmpeg codec each one maps to.
package subformat

import (
	"fmt"
	"sort"
	"strings"
)

// Spec describes one supported output format.
type Spec struct {
	// Name is the canonical format name used on the CLI and in config.
	Name string
	// Extension is the output file extension, without the leading dot.
	Extension string
	// Codec is the ffmpeg subtitle encoder name passed to -c:s.
	Codec string
	// Description is a human-readable format description.
	Description string
}

// VobSub output is addressed by its .idx path; ffmpeg writes the paired
// .sub file next to it.
var specs = map[string]Spec{
	"srt":    {Name: "SRT", Extension: "srt", Codec: "srt", Description: "SubRip Text"},
	"vobsub": {Name: "VobSub", Extension: "idx", Codec: "dvdsub", Description: "DVD Subtitles"},
	"ass":    {Name: "ASS", Extension: "ass", Codec: "ass", Description: "Advanced SubStation Alpha"},
	"webvtt": {Name: "WebVTT", Extension: "vtt", Codec: "webvtt", Description: "Web Video Text Tracks"},
}

// Lookup resolves a format name, case-insensitively. An unknown name is a
// configuration error, not a per-task failure.
func Lookup(name string) (Spec, error) {
	spec, ok := specs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Spec{}, fmt.Errorf("unsupported subtitle format %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return spec, nil
}

// Names returns the canonical format names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every format spec, ordered by canonical name.
func All() []Spec {
	out := make([]Spec, 0, len(specs))
	for _, spec := range specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
