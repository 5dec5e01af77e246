// Package humanfmt provides human-readable formatting for bytes, durations, and throughput.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// Binary (IEC) units for bytes.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// Bytes formats a byte count using IEC binary units, e.g. "15.41 MiB".
func Bytes(b int64) string {
	if b < KiB {
		return fmt.Sprintf("%d B", b)
	}
	return scaled(float64(b), "")
}

// Duration formats a per-iteration timing. Benchmarks care about sub-second
// precision, so everything below a minute keeps three significant digits.
// Examples: "812ns", "45.6µs", "12.3ms", "1.23s", "2m5s".
func Duration(d time.Duration) string {
	switch {
	case d < 0:
		return d.String()
	case d >= time.Minute:
		return d.Truncate(time.Second).String()
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Throughput formats bytes processed in d as a rate, e.g. "123.40 MiB/s".
func Throughput(bytes int64, d time.Duration) string {
	if d <= 0 {
		return "∞"
	}
	return Rate(float64(bytes) / d.Seconds())
}

// Rate formats an already computed bytes-per-second figure.
func Rate(bytesPerSec float64) string {
	if bytesPerSec < KiB {
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
	return scaled(bytesPerSec, "/s")
}

func scaled(v float64, suffix string) string {
	switch {
	case v >= GiB:
		return fmt.Sprintf("%.2f GiB%s", v/GiB, suffix)
	case v >= MiB:
		return fmt.Sprintf("%.2f MiB%s", v/MiB, suffix)
	default:
		return fmt.Sprintf("%.2f KiB%s", v/KiB, suffix)
	}
}

// Count formats a count with a decimal suffix. Examples: "1.23M", "4.56K", "789".
func Count(n int64) string {
	const (
		thousand = 1000
		million  = 1000 * thousand
	)

	switch {
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}
