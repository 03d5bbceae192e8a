package deps

import (
	"context"
	"errors"
	"testing"
)

type fakeExecutor struct {
	versions map[string]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if out, ok := f.versions[name]; ok {
		return out, nil
	}
	return "", errors.New("not found")
}

func (f *fakeExecutor) Stream(ctx context.Context, onLine func(string), cancelled func() bool, name string, args ...string) (string, error) {
	return "", nil
}

func checkerWithTools(available map[string]string) *Checker {
	return &Checker{
		lookPath: func(name string) (string, error) {
			if path, ok := available[name]; ok {
				return path, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		executor: &fakeExecutor{versions: map[string]string{
			"ffmpeg":  "ffmpeg version 6.1\nbuilt with gcc",
			"ffprobe": "ffprobe version 6.1\nbuilt with gcc",
		}},
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		available map[string]string
		wantErr   error
	}{
		{
			name:      "both tools present",
			available: map[string]string{"ffmpeg": "/usr/bin/ffmpeg", "ffprobe": "/usr/bin/ffprobe"},
		},
		{
			name:      "ffmpeg missing",
			available: map[string]string{"ffprobe": "/usr/bin/ffprobe"},
			wantErr:   ErrFfmpegNotFound,
		},
		{
			name:      "ffprobe missing",
			available: map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
			wantErr:   ErrFfprobeNotFound,
		},
		{
			name:      "nothing present",
			available: map[string]string{},
			wantErr:   ErrFfmpegNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkerWithTools(tt.available).Check()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReport(t *testing.T) {
	checker := checkerWithTools(map[string]string{"ffmpeg": "/usr/bin/ffmpeg"})

	report := checker.Report(context.Background())
	if len(report) != 2 {
		t.Fatalf("Report() returned %d tools, want 2", len(report))
	}

	if !report[0].Found || report[0].Name != "ffmpeg" {
		t.Errorf("ffmpeg entry = %+v, want found", report[0])
	}
	if report[0].Version != "ffmpeg version 6.1" {
		t.Errorf("Version = %q, want first line only", report[0].Version)
	}
	if report[1].Found {
		t.Errorf("ffprobe entry = %+v, want missing", report[1])
	}
}
