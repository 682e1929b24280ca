package intervention

import "errors"

var (
	// ErrStateLocked is returned when a closed or archived intervention is asked
	// to change in any way other than closed -> archived.
	ErrStateLocked = errors.New("intervention is locked")

	// ErrInvalidTransition is returned when the requested status is not reachable
	// from the current one, e.g. archiving without closing first.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrentModification is returned by repositories when the stored
	// version no longer matches the one the caller loaded.
	ErrConcurrentModification = errors.New("intervention was modified concurrently")
)
