package probe

import (
	"subextract/pkg/executor"
)

type implProber struct {
	executor executor.Executor
}

// New creates a new Prober instance
func New(exec executor.Executor) Prober {
	return &implProber{
		executor: exec,
	}
}
