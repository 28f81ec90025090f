package movement

import (
	"time"
)

// secondsPerDay is the length of a display day in seconds.
const secondsPerDay = 24 * 60 * 60

// A Watch tracks a fixed starting time and an accumulated offset, both in
// seconds. The end time, Start+Offset, is derived on demand and never
// stored. The zero value is a valid Watch reading 00:00:00.
type Watch struct {
	// Start is the starting time of the watch in seconds. It is set at
	// construction and never changes afterwards.
	Start int64

	// Offset is the signed span in seconds applied to Start. It is the
	// only numeric field mutated by arithmetic.
	Offset int64

	// Meridiem selects 12-hour display with an AM/PM marker.
	Meridiem bool
}

// New returns a Watch started at the clock time described by s. The string
// is parsed as an absolute time, so an AM/PM marker is honored; malformed
// numeric fields count as zero.
func New(s string, meridiem bool) Watch {
	return Watch{Start: ToSeconds(s, true), Meridiem: meridiem}
}

// Now returns a Watch started at the current local time of day.
func Now(meridiem bool) Watch {
	hour, min, sec := time.Now().Clock()
	return Watch{
		Start:    int64(hour)*3600 + int64(min)*60 + int64(sec),
		Meridiem: meridiem,
	}
}

// ChangeMeridiem switches between 12-hour and 24-hour display. Only the
// rendering changes; the tracked times are untouched.
func (w *Watch) ChangeMeridiem(meridiem bool) {
	w.Meridiem = meridiem
}

// AddOffset returns the raw end time of the watch, Start+Offset.
func (w Watch) AddOffset() int64 {
	return w.Start + w.Offset
}

// String renders the end time of the watch as HH:MM:SS, or HH:MM:SS AM|PM
// when Meridiem is set, followed by a +/- days suffix when the end time
// falls outside the starting day. Watch implements [fmt.Stringer].
func (w Watch) String() string {
	end := floorMod(w.AddOffset(), secondsPerDay)

	tod := Format24Hour(end)
	if w.Meridiem {
		tod = Format12Hour(end)
	}

	return tod + DaySuffix(w.AddOffset()-end)
}

// floorMod returns x mod m with the sign of m, so that a negative end time
// wraps to the previous day's time of day.
func floorMod(x, m int64) int64 {
	return (x%m + m) % m
}
