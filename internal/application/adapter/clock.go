package adapter

import "time"

// Clock supplies wall-clock time to use cases, keeping export timestamps and
// filenames deterministic under test.
type Clock interface {
	Now() time.Time
}
