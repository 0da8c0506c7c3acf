package parallel

import "errors"

const Namespace = "parallel"

var (
	ErrInvalidConfig     = errors.New(Namespace + ": invalid configuration")
	ErrFeedClosed        = errors.New(Namespace + ": feed is closed")
	ErrSourceFailed      = errors.New(Namespace + ": source iteration failed")
	ErrOperationPanicked = errors.New(Namespace + ": operation panicked")
)
