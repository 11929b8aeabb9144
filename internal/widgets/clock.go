package widgets

import "time"

// Default clock layouts, matching the bar's "Mon, Jan 2  3:04 PM" look.
const (
	DefaultDateLayout = "Mon, Jan 2"
	DefaultTimeLayout = "3:04 PM"
)

// ClockState is the rendered date/time pair.
type ClockState struct {
	Date string
	Time string
}

// Clock formats now with the given layouts, falling back to the defaults
// for empty layout strings.
func Clock(now time.Time, dateLayout, timeLayout string) ClockState {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	return ClockState{
		Date: now.Format(dateLayout),
		Time: now.Format(timeLayout),
	}
}
