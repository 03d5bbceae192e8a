package executor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCancelled is returned by Stream when the cancelled callback fired and
// the process was killed before it finished on its own.
var ErrCancelled = errors.New("command cancelled")

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// Stream runs an external command, forwarding stderr line by line. ffmpeg
// writes all diagnostics to stderr, so stdout is left untouched.
func (e *implExecutor) Stream(ctx context.Context, onLine func(string), cancelled func() bool, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("command '%s' stderr pipe: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("command '%s' start: %w", name, err)
	}

	var collected strings.Builder
	killed := false

	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		collected.WriteString(line)
		collected.WriteByte('\n')

		if onLine != nil {
			onLine(line)
		}

		if cancelled != nil && cancelled() {
			killed = true
			_ = cmd.Process.Kill()
			break
		}
	}

	waitErr := cmd.Wait()
	if killed {
		return collected.String(), ErrCancelled
	}
	if waitErr != nil {
		return collected.String(), fmt.Errorf("command '%s' failed: %w", name, waitErr)
	}

	return collected.String(), nil
}
