package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	exe := New()

	out, err := exe.Execute(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("stdout = %q, want hello", out)
	}
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	exe := New()

	_, err := exe.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not include stderr", err)
	}
}

func TestStream(t *testing.T) {
	exe := New()

	var lines []string
	stderr, err := exe.Stream(context.Background(), func(line string) {
		lines = append(lines, line)
	}, nil, "sh", "-c", "echo one >&2; echo two >&2")
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("lines = %v, want [one two]", lines)
	}
	if !strings.Contains(stderr, "one") || !strings.Contains(stderr, "two") {
		t.Errorf("collected stderr = %q", stderr)
	}
}

func TestStreamFailure(t *testing.T) {
	exe := New()

	stderr, err := exe.Stream(context.Background(), nil, nil, "sh", "-c", "echo diag >&2; exit 1")
	if err == nil {
		t.Fatal("Stream() expected error")
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("plain failure misreported as cancellation")
	}
	if !strings.Contains(stderr, "diag") {
		t.Errorf("collected stderr = %q, want diagnostic text", stderr)
	}
}

func TestStreamCancelKillsProcess(t *testing.T) {
	exe := New()

	cancelled := false
	_, err := exe.Stream(context.Background(), func(line string) {
		cancelled = true
	}, func() bool {
		return cancelled
	}, "sh", "-c", "while true; do echo tick >&2; sleep 0.05; done")

	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Stream() = %v, want ErrCancelled", err)
	}
}
