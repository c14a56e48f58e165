package scrollsurface

import "time"

const (
	// velocityWindow is how far back samples count toward the release
	// velocity.
	velocityWindow = 100 * time.Millisecond

	// stillThreshold is how long the pointer may rest before release for the
	// release to count as a plain drop.
	stillThreshold = 50 * time.Millisecond

	maxSamples = 20
)

type sample struct {
	at     time.Time
	offset float64
}

// velocityTracker estimates offset velocity from recent drag samples.
type velocityTracker struct {
	samples []sample
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(at time.Time, offset float64) {
	if len(t.samples) == maxSamples {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:maxSamples-1]
	}
	t.samples = append(t.samples, sample{at: at, offset: offset})
}

// velocity returns points per second at time now. It is zero when there are
// fewer than two samples in the window or the pointer has been still.
func (t *velocityTracker) velocity(now time.Time) float64 {
	if len(t.samples) < 2 {
		return 0
	}
	last := t.samples[len(t.samples)-1]
	if now.Sub(last.at) > stillThreshold {
		return 0
	}

	first := last
	for i := len(t.samples) - 2; i >= 0; i-- {
		if last.at.Sub(t.samples[i].at) > velocityWindow {
			break
		}
		first = t.samples[i]
	}

	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.offset - first.offset) / dt
}
