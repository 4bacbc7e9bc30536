package impl

import (
	"time"

	"fleetalert/internal/domain/alert"
)

// referenceClock resolves the reference date of a request.
type referenceClock struct {
	location *time.Location
	now      func() time.Time
}

func newReferenceClock(location *time.Location) referenceClock {
	if location == nil {
		location = time.UTC
	}

	return referenceClock{location: location, now: time.Now}
}

// resolve returns ref as a calendar date, or today in the clock's location when ref is zero.
func (c referenceClock) resolve(ref time.Time) time.Time {
	if ref.IsZero() {
		return c.today()
	}

	return alert.DateOf(ref)
}

func (c referenceClock) today() time.Time {
	return alert.Today(c.now(), c.location)
}
