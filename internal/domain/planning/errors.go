package planning

import "errors"

var (
	// ErrNotDue is returned when advancing a planning whose next date is still ahead.
	ErrNotDue = errors.New("planning is not due")

	// ErrConcurrentModification is returned when the stored version no longer matches.
	ErrConcurrentModification = errors.New("planning was modified concurrently")
)
