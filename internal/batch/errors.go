package batch

import "errors"

var (
	ErrNoJobs        = errors.New("batch: no jobs")
	ErrUnknownPreset = errors.New("batch: unknown preset")
	ErrNoStore       = errors.New("batch: no store")
)
