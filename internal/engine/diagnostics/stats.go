// Package diagnostics tracks frame timing for on-screen and log reporting.
// It only observes the frame loop and never feeds back into it.
package diagnostics

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terraview/internal/logger"
)

const (
	// HistoryLength is the number of frames averaged by the Average values.
	HistoryLength = 120

	// Smoothing is the exponential moving average factor for smoothed values.
	Smoothing = 0.1

	memInterval = 2 * time.Second
)

// Snapshot is a read-only view of the current statistics.
type Snapshot struct {
	FPS            float64 // smoothed
	AverageFPS     float64
	FrameTime      float64 // smoothed, milliseconds
	AverageFrameMs float64
	Frames         uint64
	HeapAlloc      uint64
}

// String formats the snapshot on one line, e.g. for a window title.
func (s Snapshot) String() string {
	return fmt.Sprintf("%.0f fps (avg %.0f) | %.3fms (avg %.3fms) | %d frames",
		s.FPS, s.AverageFPS, s.FrameTime, s.AverageFrameMs, s.Frames)
}

// ring keeps the last HistoryLength samples and their running sum.
type ring struct {
	values [HistoryLength]float64
	next   int
	count  int
	sum    float64
}

func (r *ring) push(v float64) {
	if r.count == HistoryLength {
		r.sum -= r.values[r.next]
	} else {
		r.count++
	}
	r.values[r.next] = v
	r.sum += v
	r.next = (r.next + 1) % HistoryLength
}

func (r *ring) average() float64 {
	if r.count == 0 {
		return 0
	}
	return r.sum / float64(r.count)
}

// series is one measured value with smoothing and history.
type series struct {
	smoothed float64
	seeded   bool
	history  ring
}

func (s *series) add(v float64) {
	if !s.seeded {
		s.smoothed = v
		s.seeded = true
	} else {
		s.smoothed += (v - s.smoothed) * Smoothing
	}
	s.history.push(v)
}

// FrameStats accumulates per-frame timing.
type FrameStats struct {
	frames    uint64
	fps       series
	frameTime series

	logInterval time.Duration
	sinceLog    time.Duration

	memStats  runtime.MemStats
	sinceMem  time.Duration
	memLoaded bool
}

// NewFrameStats creates empty statistics. Periodic logging is off until
// LogEvery is called.
func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// LogEvery enables an Info log line with the current statistics every
// interval of recorded frame time. Zero disables it.
func (s *FrameStats) LogEvery(interval time.Duration) {
	s.logInterval = interval
	s.sinceLog = 0
}

// Record adds one frame of length dt.
func (s *FrameStats) Record(dt time.Duration) {
	s.frames++
	if dt > 0 {
		s.frameTime.add(float64(dt) / float64(time.Millisecond))
		s.fps.add(1 / dt.Seconds())
	}

	s.sinceMem += dt
	if !s.memLoaded || s.sinceMem >= memInterval {
		runtime.ReadMemStats(&s.memStats)
		s.memLoaded = true
		s.sinceMem = 0
	}

	if s.logInterval > 0 {
		s.sinceLog += dt
		if s.sinceLog >= s.logInterval {
			s.sinceLog = 0
			s.log()
		}
	}
}

// FrameCount returns the number of recorded frames.
func (s *FrameStats) FrameCount() uint64 {
	return s.frames
}

// FPS returns the smoothed frames per second.
func (s *FrameStats) FPS() float64 {
	return s.fps.smoothed
}

// AverageFPS returns the mean FPS over the last HistoryLength frames.
func (s *FrameStats) AverageFPS() float64 {
	return s.fps.history.average()
}

// FrameTime returns the smoothed frame time in milliseconds.
func (s *FrameStats) FrameTime() float64 {
	return s.frameTime.smoothed
}

// AverageFrameTime returns the mean frame time in milliseconds over the last
// HistoryLength frames.
func (s *FrameStats) AverageFrameTime() float64 {
	return s.frameTime.history.average()
}

// Snapshot returns all values at once.
func (s *FrameStats) Snapshot() Snapshot {
	return Snapshot{
		FPS:            s.FPS(),
		AverageFPS:     s.AverageFPS(),
		FrameTime:      s.FrameTime(),
		AverageFrameMs: s.AverageFrameTime(),
		Frames:         s.frames,
		HeapAlloc:      s.memStats.HeapAlloc,
	}
}

func (s *FrameStats) log() {
	snap := s.Snapshot()
	logger.Info("frame diagnostics",
		zap.Float64("fps", snap.FPS),
		zap.Float64("fps_avg", snap.AverageFPS),
		zap.Float64("frame_ms", snap.FrameTime),
		zap.Float64("frame_ms_avg", snap.AverageFrameMs),
		zap.Uint64("frames", snap.Frames),
		zap.String("heap", FormatBytes(int64(snap.HeapAlloc))),
	)
}

// FormatBytes formats a byte count as a human readable string.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
