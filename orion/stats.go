package orion

import (
	"time"
)

// FrameStats describes the timing of the runner loop.
type FrameStats struct {
	// number of completed loop iterations
	FrameCount uint64

	// number of Update calls
	TickCount uint64

	// simulation ticks that were discarded because a single
	// iteration exceeded its tick limit
	DroppedTicks uint64

	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration
}

// frame records the duration of a frame. It returns true
// every 60 frames, which is a good time to report the stats.
func (s *FrameStats) frame(d time.Duration) bool {
	const window = 64

	s.Delta = d
	s.MaxDuration = max(s.MaxDuration, d)

	if s.FrameCount < window/2 {
		s.AverageDuration = d
	} else {
		s.AverageDuration = ((window-1)*s.AverageDuration + d) / window
	}

	s.FrameCount += 1

	return s.FrameCount%60 == 0
}

// FPS returns the frames per second derived from the moving average
// of the frame duration.
func (s *FrameStats) FPS() float64 {
	if s.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / s.AverageDuration.Seconds()
}

// TPS returns the simulation ticks per second the runner aims for.
func TPS(tickRate time.Duration) float64 {
	return 1.0 / tickRate.Seconds()
}
