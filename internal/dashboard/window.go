package dashboard

import "time"

// Trend window bounds, in days. An explicit user range may shrink below
// the default but never below the minimum; implicit fallback ranges never
// shrink the default window.
const (
	defaultTrendWindow = 10
	minTrendWindow     = 2
	maxTrendWindow     = 180
)

// TrendWindow computes how many days of trend data to request. A range is
// explicit when the caller supplied at least one of explicitFrom and
// explicitTo; missing bounds resolve to the fallbacks. Degenerate spans
// (missing bounds, zero or negative day counts) collapse to the minimum
// for explicit ranges and to the default otherwise.
func TrendWindow(explicitFrom, explicitTo, fallbackStart, fallbackEnd *time.Time) int {
	explicit := explicitFrom != nil || explicitTo != nil

	start := explicitFrom
	if start == nil {
		start = fallbackStart
	}

	end := explicitTo
	if end == nil {
		end = fallbackEnd
	}

	if start != nil && end != nil {
		days := int(end.Sub(*start).Hours()/24) + 1
		if days > 0 {
			clamped := min(days, maxTrendWindow)
			if explicit {
				return max(minTrendWindow, clamped)
			}

			return max(defaultTrendWindow, max(minTrendWindow, clamped))
		}
	}

	if explicit {
		return minTrendWindow
	}

	return defaultTrendWindow
}
