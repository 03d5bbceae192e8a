package engine

import (
	"sync"
	"sync/atomic"

	"subextract/internal/extract"
	"subextract/internal/logger"
	"subextract/internal/probe"
)

type implEngine struct {
	prober    probe.Prober
	extractor extract.Extractor
	logger    logger.Logger
	observer  Observer

	cancel atomic.Bool

	mu    sync.Mutex // guards state transitions
	state State

	// Job counters, mutated only by the goroutine executing Run.
	total     int
	processed int
	succeeded int
	failed    int
	skipped   int
}

// New creates a new Engine instance. A nil observer is replaced with a
// no-op so the engine never has to check before emitting callbacks.
func New(prober probe.Prober, extractor extract.Extractor, log logger.Logger, obs Observer) Engine {
	if obs == nil {
		obs = noopObserver{}
	}
	return &implEngine{
		prober:    prober,
		extractor: extractor,
		logger:    log,
		observer:  obs,
		state:     StateIdle,
	}
}
