package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs a command to completion and returns its captured stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// Stream runs a command and delivers each stderr line to onLine as it is
	// produced. The cancelled callback is polled after every line; when it
	// reports true the process is killed and ErrCancelled is returned. The
	// accumulated stderr text is returned in all cases.
	Stream(ctx context.Context, onLine func(string), cancelled func() bool, name string, args ...string) (string, error)
}
