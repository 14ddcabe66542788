package workers

import "errors"

var (
	ErrNoSuchJobID    = errors.New("no such job id")
	ErrTrackerStopped = errors.New("job tracker is stopped")
	ErrJobPanicked    = errors.New("job panicked")
)
