package metrics

import (
	"fmt"
	"time"

	"github.com/hausp/bigcalc/internal/bigint"
)

// Indicators holds derived throughput figures for a completed evaluation.
type Indicators struct {
	Bits            int
	Digits          int
	BitsPerSecond   float64
	DigitsPerSecond float64
	Negative        bool
}

// Compute derives indicators from an evaluation result and its duration.
func Compute(result bigint.Int, duration time.Duration) *Indicators {
	bits := result.BitLen()
	digits := len(result.String())
	if result.Sign() < 0 {
		digits--
	}

	secs := duration.Seconds()
	ind := &Indicators{
		Bits:     bits,
		Digits:   digits,
		Negative: result.Sign() < 0,
	}
	if secs > 0 {
		ind.BitsPerSecond = float64(bits) / secs
		ind.DigitsPerSecond = float64(digits) / secs
	}
	return ind
}

// FormatBitsPerSecond renders a bits-per-second rate with a unit suffix.
func FormatBitsPerSecond(bps float64) string {
	return formatRate(bps, "bit/s")
}

// FormatDigitsPerSecond renders a digits-per-second rate with a unit suffix.
func FormatDigitsPerSecond(dps float64) string {
	return formatRate(dps, "digit/s")
}

func formatRate(rate float64, unit string) string {
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2f G%s", rate/1e9, unit)
	case rate >= 1e6:
		return fmt.Sprintf("%.2f M%s", rate/1e6, unit)
	case rate >= 1e3:
		return fmt.Sprintf("%.2f k%s", rate/1e3, unit)
	default:
		return fmt.Sprintf("%.1f %s", rate, unit)
	}
}
