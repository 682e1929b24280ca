package shared

import "time"

// StorageTime returns t in UTC, truncated to the millisecond precision the
// repositories persist. Aggregates stamp every instant through it so the value
// handed back to a caller is the value a later read returns.
func StorageTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
