package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"subextract/internal/logger"
)

// New creates a new Watcher instance monitoring inputDir
func New(inputDir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settleDelay <= 0 {
		settleDelay = 500 * time.Millisecond
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     fsw,
		settleDelay: settleDelay,
	}, nil
}
