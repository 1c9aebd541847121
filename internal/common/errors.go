package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal    = errors.New("internal error")
	ErrMissingUserID = errors.New("missing user id")

	// ErrBatchTooLarge is returned before any write when a batch exceeds
	// MaxRemoteBatchSize. Callers must split the batch; retrying is pointless.
	ErrBatchTooLarge = errors.New("batch too large")
)
