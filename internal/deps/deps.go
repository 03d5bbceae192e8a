// Package deps validates that the external media tools the engine shells
// out to are actually present. Absence is a fatal startup condition,
// reported once rather than per file.
package deps

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"subextract/pkg/executor"
)

// Sentinel errors returned by Check when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

var requiredTools = []string{"ffmpeg", "ffprobe"}

// Checker verifies external tool availability. The path lookup is injected
// so tests run without the real binaries.
type Checker struct {
	lookPath func(string) (string, error)
	executor executor.Executor
}

// NewChecker builds a checker using the real PATH lookup.
func NewChecker(exe executor.Executor) *Checker {
	return &Checker{
		lookPath: exec.LookPath,
		executor: exe,
	}
}

// Check returns a sentinel error for the first required tool missing from
// PATH, or nil when both ffmpeg and ffprobe are available.
func (c *Checker) Check() error {
	if _, err := c.lookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := c.lookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// Tool is one row of a diagnostic report.
type Tool struct {
	Name    string
	Found   bool
	Path    string
	Version string
}

// Report probes every required tool and returns its location and version
// banner. Informational only; it never fails.
func (c *Checker) Report(ctx context.Context) []Tool {
	tools := make([]Tool, 0, len(requiredTools))
	for _, name := range requiredTools {
		t := Tool{Name: name}
		if path, err := c.lookPath(name); err == nil {
			t.Found = true
			t.Path = path
			if out, err := c.executor.Execute(ctx, name, "-version"); err == nil {
				t.Version = firstLine(out)
			}
		}
		tools = append(tools, t)
	}
	return tools
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return s
}
