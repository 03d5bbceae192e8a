package engine

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.mkv", true},
		{"movie.MKV", true},
		{"clip.mp4", true},
		{"clip.webm", true},
		{"old.avi", true},
		{"old.wmv", true},
		{"clip.mov", true},
		{"clip.flv", true},
		{"subs.srt", false},
		{"notes.txt", false},
		{"archive.mkv.bak", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsVideoFile(tt.path); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDiscoverVideos(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "season1")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.mkv", "b.MP4", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.webm"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverVideos([]string{dir})
	if err != nil {
		t.Fatalf("DiscoverVideos() error = %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("found %d files, want 3: %v", len(files), files)
	}
	if !sort.StringsAreSorted(files) {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestDiscoverVideosDeduplicates(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "movie.mkv")
	if err := os.WriteFile(video, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverVideos([]string{dir, dir, video})
	if err != nil {
		t.Fatalf("DiscoverVideos() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("found %d files, want 1 after dedup: %v", len(files), files)
	}
}

func TestDiscoverVideosDirectFilePath(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "movie.mkv")
	if err := os.WriteFile(video, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverVideos([]string{video})
	if err != nil {
		t.Fatalf("DiscoverVideos() error = %v", err)
	}
	if len(files) != 1 || files[0] != video {
		t.Errorf("files = %v, want just %q", files, video)
	}
}

func TestDiscoverVideosMissingPath(t *testing.T) {
	if _, err := DiscoverVideos([]string{"/definitely/not/a/real/path"}); err == nil {
		t.Error("DiscoverVideos() expected error for a missing path")
	}
}
