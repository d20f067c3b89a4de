package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// etaSmoothingFactor controls the exponential smoothing of the progress rate.
// Higher values react faster to rate changes but produce a jumpier ETA.
const etaSmoothingFactor = 0.3

// maxETA caps the reported estimate so pathological early rates do not
// produce absurd values.
const maxETA = 24 * time.Hour

// ProgressState tracks the per-calculator progress values and computes
// their average. It is safe for concurrent use.
type ProgressState struct {
	mu             sync.Mutex
	numCalculators int
	progresses     []float64
}

// NewProgressState creates a ProgressState for the given number of calculators.
//
// Parameters:
//   - numCalculators: The number of progress sources to track.
//
// Returns:
//   - *ProgressState: The initialized state.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{
		numCalculators: numCalculators,
		progresses:     make([]float64, numCalculators),
	}
}

// Update records a progress value for one calculator. Values are clamped to
// [0, 1] and out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= ps.numCalculators {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	ps.mu.Lock()
	ps.progresses[index] = value
	ps.mu.Unlock()
}

// CalculateAverage returns the mean progress across all calculators.
//
// Returns:
//   - float64: The average progress in [0, 1], or 0 when nothing is tracked.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numCalculators)
}

// ProgressWithETA augments ProgressState with a smoothed progress rate and an
// estimated time remaining.
type ProgressWithETA struct {
	*ProgressState
	etaMu        sync.Mutex
	progressRate float64 // average fraction completed per second, smoothed
	startTime    time.Time
	lastUpdate   time.Time
	lastAverage  float64
}

// NewProgressWithETA creates an ETA-capable progress tracker for the given
// number of calculators.
//
// Parameters:
//   - numCalculators: The number of progress sources to track.
//
// Returns:
//   - *ProgressWithETA: The initialized tracker.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCalculators),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new average progress
// together with the current ETA estimate.
//
// Parameters:
//   - index: The calculator index reporting progress.
//   - value: The progress value in [0, 1].
//
// Returns:
//   - float64: The average progress across all calculators.
//   - time.Duration: The estimated time remaining (0 when unknown).
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	p.etaMu.Lock()
	now := time.Now()
	if !p.lastUpdate.IsZero() {
		elapsed := now.Sub(p.lastUpdate).Seconds()
		if elapsed > 0 && avg > p.lastAverage {
			instantRate := (avg - p.lastAverage) / elapsed
			if p.progressRate == 0 {
				p.progressRate = instantRate
			} else {
				p.progressRate = etaSmoothingFactor*instantRate + (1-etaSmoothingFactor)*p.progressRate
			}
		}
	}
	p.lastUpdate = now
	p.lastAverage = avg
	p.etaMu.Unlock()

	return avg, p.GetETA()
}

// GetETA returns the current estimated time remaining based on the smoothed
// progress rate. It returns 0 when no rate has been established yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.etaMu.Lock()
	rate := p.progressRate
	p.etaMu.Unlock()
	if rate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / rate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// FormatETA renders an ETA for terminal display: "calculating..." while no
// estimate exists, then a compact h/m/s form.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	totalSeconds := int(eta.Round(time.Second).Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatProgressBarWithETA renders a progress bar with a percentage and ETA
// suffix, e.g. "[█████░░░░░]  50% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %3.0f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, FormatETA(eta))
}

// ProgressBar renders a fixed-width bar of filled and empty block characters.
// Progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(length))
	if filled > length {
		filled = length
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatNumberString inserts thousand separators into a decimal number string.
// A leading sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
