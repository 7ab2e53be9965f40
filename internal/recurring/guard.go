package recurring

import (
	"sync"
	"time"

	"github.com/dojo-ledger/backend/internal/types"
)

// Guard serializes processing runs. A run started while another one is active
// fails with ErrRunInProgress instead of waiting.
type Guard struct {
	mu sync.Mutex
}

// Do runs fn unless another run holds the guard.
func (g *Guard) Do(fn func() error) error {
	if !g.mu.TryLock() {
		return ErrRunInProgress
	}
	defer g.mu.Unlock()

	return fn()
}

// Clock returns the current date.
type Clock interface {
	Today() types.Date
}

// SystemClock is the Clock of the machine, in the location or the local time zone.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() types.Date {
	location := c.Location
	if location == nil {
		location = time.Local
	}

	return types.DateOf(time.Now().In(location))
}

// FixedClock always returns the same date.
type FixedClock types.Date

func (c FixedClock) Today() types.Date {
	return types.Date(c)
}
