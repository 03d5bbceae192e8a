package engine

// Observer receives progress callbacks during a run. All methods are
// invoked from the goroutine executing Run, strictly in the order work
// completes; progress counters are monotonically non-decreasing.
type Observer interface {
	OnLog(message string)
	OnScanProgress(found, seen int)
	OnExtractProgress(processed, total int)
	OnFinished(summary Summary)
}

type noopObserver struct{}

func (noopObserver) OnLog(string)               {}
func (noopObserver) OnScanProgress(int, int)    {}
func (noopObserver) OnExtractProgress(int, int) {}
func (noopObserver) OnFinished(Summary)         {}
