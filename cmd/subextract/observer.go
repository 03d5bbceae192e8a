package main

import (
	"context"

	"subextract/internal/engine"
	"subextract/internal/logger"
)

// logObserver renders engine callbacks through the application logger.
// Progress callbacks are logged at debug level so a default run shows only
// the per-stream outcome lines and the final summary.
type logObserver struct {
	logger logger.Logger
}

func newLogObserver(log logger.Logger) engine.Observer {
	return &logObserver{logger: log}
}

func (o *logObserver) OnLog(message string) {
	o.logger.Info(context.Background(), "%s", message)
}

func (o *logObserver) OnScanProgress(found, seen int) {
	o.logger.Debug(context.Background(), "Scan progress: %d streams found, %d files seen", found, seen)
}

func (o *logObserver) OnExtractProgress(processed, total int) {
	o.logger.Debug(context.Background(), "Extract progress: %d/%d", processed, total)
}

func (o *logObserver) OnFinished(summary engine.Summary) {}
