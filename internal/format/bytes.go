package format

import "fmt"

// FormatBytes renders a byte count in a human-readable binary unit
// (B, KiB, MiB, GiB, TiB).
//
// Parameters:
//   - bytes: The byte count.
//
// Returns:
//   - string: A formatted string such as "1.5 MiB".
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGT"[exp])
}
