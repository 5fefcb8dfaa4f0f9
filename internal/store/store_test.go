package store

import (
	"fmt"
	"time"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestStore builds a store with a fixed clock and sequential IDs so tests
// can assert on generated values.
func newTestStore(seed Snapshot) *Store {
	n := 0
	return New(seed).
		WithClock(func() time.Time { return testNow }).
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		})
}
