package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subextract/internal/subformat"
	"subextract/pkg/executor"
)

// OutputPath computes the destination path for an extraction request:
// <outputDir or videoDir>/<videoBaseName>.<language>.<extension>.
func OutputPath(videoPath, lang string, format subformat.Spec, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(videoPath)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s.%s", base, lang, format.Extension))
}

// Extract runs one ffmpeg invocation mapping the selected stream to the
// requested format. Failures are classified into an Outcome and never
// returned as errors; the engine records them in its counters.
func (e *implExtractor) Extract(ctx context.Context, req Request) Outcome {
	outputPath := OutputPath(req.VideoPath, req.Language, req.Format, req.OutputDir)

	// Pre-existing output without overwrite is a skip, not a failure, and
	// must not invoke the tool at all.
	if !req.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return Outcome{Status: StatusSkipped, Reason: ReasonAlreadyExists, OutputPath: outputPath}
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		e.logger.Error(ctx, "Failed to create output directory for %s: %v", outputPath, err)
		return Outcome{Status: StatusFailed, Reason: ReasonExtractionErr, OutputPath: outputPath}
	}

	overwriteFlag := "-n"
	if req.Overwrite {
		overwriteFlag = "-y"
	}

	args := []string{
		"-loglevel", "warning",
		overwriteFlag,
		"-i", req.VideoPath,
		"-map", fmt.Sprintf("0:%d", req.StreamIndex),
		"-c:s", req.Format.Codec,
		outputPath,
	}

	stderr, err := e.executor.Stream(ctx, func(line string) {
		e.logger.Debug(ctx, "ffmpeg: %s", line)
	}, req.Cancelled, "ffmpeg", args...)

	if err != nil {
		reason := classify(err, stderr)
		status := StatusFailed
		if reason == ReasonAlreadyExists {
			// Lost the race against a file created after our existence
			// check; ffmpeg refused to overwrite under -n.
			status = StatusSkipped
		}
		return Outcome{Status: status, Reason: reason, OutputPath: outputPath}
	}

	return Outcome{Status: StatusSuccess, OutputPath: outputPath}
}

// classify maps a non-zero ffmpeg exit to a reason by inspecting its stderr
// for known phrasings. Unmatched diagnostics stay a generic extraction
// error; the substring set is deliberately not grown.
func classify(err error, stderr string) string {
	if errors.Is(err, executor.ErrCancelled) {
		return ReasonCancelled
	}
	if strings.Contains(stderr, "Unknown encoder") {
		return ReasonFormatMismatch
	}
	if strings.Contains(stderr, "already exists") {
		return ReasonAlreadyExists
	}
	return ReasonExtractionErr
}
