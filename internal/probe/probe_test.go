package probe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeExecutor returns canned output so tests run without a real ffprobe.
type fakeExecutor struct {
	output string
	err    error
	calls  [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func (f *fakeExecutor) Stream(ctx context.Context, onLine func(string), cancelled func() bool, name string, args ...string) (string, error) {
	return "", nil
}

func TestParseStreams(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Stream
		wantErr bool
	}{
		{
			name: "tagged streams",
			input: `{"streams":[
				{"index":2,"codec_name":"subrip","tags":{"language":"eng","title":"English (SDH)"}},
				{"index":3,"codec_name":"hdmv_pgs_subtitle","tags":{"language":"heb"}}
			]}`,
			want: []Stream{
				{Index: 2, Codec: "subrip", Language: "eng", Title: "English (SDH)"},
				{Index: 3, Codec: "hdmv_pgs_subtitle", Language: "heb", Title: ""},
			},
		},
		{
			name:  "missing tags default to und and empty title",
			input: `{"streams":[{"index":4,"codec_name":"ass"}]}`,
			want:  []Stream{{Index: 4, Codec: "ass", Language: "und", Title: ""}},
		},
		{
			name:  "no streams key",
			input: `{}`,
			want:  []Stream{},
		},
		{
			name:    "malformed JSON",
			input:   `{"streams": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStreams([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStreams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStreams() returned %d streams, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("stream[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSubtitleStreams(t *testing.T) {
	fake := &fakeExecutor{output: `{"streams":[{"index":2,"codec_name":"subrip","tags":{"language":"eng"}}]}`}
	prober := New(fake)

	streams, err := prober.SubtitleStreams(context.Background(), "/media/movie.mkv")
	if err != nil {
		t.Fatalf("SubtitleStreams() error = %v", err)
	}
	if len(streams) != 1 || streams[0].Language != "eng" {
		t.Fatalf("SubtitleStreams() = %+v, want one eng stream", streams)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("executor called %d times, want 1", len(fake.calls))
	}
	call := fake.calls[0]
	if call[0] != "ffprobe" {
		t.Errorf("tool = %q, want ffprobe", call[0])
	}
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "-select_streams s") {
		t.Errorf("ffprobe not restricted to subtitle streams: %v", call)
	}
	if call[len(call)-1] != "/media/movie.mkv" {
		t.Errorf("last arg = %q, want the file path", call[len(call)-1])
	}
}

func TestSubtitleStreamsToolFailure(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("exit status 1")}
	prober := New(fake)

	_, err := prober.SubtitleStreams(context.Background(), "/media/broken.mkv")
	if err == nil {
		t.Fatal("SubtitleStreams() expected error")
	}
	if !strings.Contains(err.Error(), "/media/broken.mkv") {
		t.Errorf("error %q does not name the file", err)
	}
}
