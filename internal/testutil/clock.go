package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ReferenceTime is the instant most service tests pin their clocks to.
var ReferenceTime = time.Date(2023, 10, 10, 20, 0, 0, 0, time.UTC)

// NewFakeClock returns a fake clock fixed at ReferenceTime.
func NewFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(ReferenceTime)
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
