package animation

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Clock provides time for animations. Production schedulers use the wall
// clock; tests inject a clockz.FakeClock so frames can be pumped at exact
// instants.
type Clock interface {
	Now() time.Time
}

// DefaultClock is the time source for schedulers created without one.
var DefaultClock Clock = clockz.RealClock
