package movement

import (
	"fmt"
)

// Format24Hour renders a seconds value as zero-padded HH:MM:SS. The hours
// are taken mod 24; secs is expected to already lie in [0, 86400).
func Format24Hour(secs int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600%24, secs%3600/60, secs%60)
}

// Format12Hour renders a seconds value as zero-padded HH:MM:SS AM|PM.
// Hour zero displays as 12; a 12-hour clock has no zero hour.
func Format12Hour(secs int64) string {
	hours := secs / 3600 % 24

	meridiem := "AM"
	if hours >= 12 {
		hours -= 12
		meridiem = "PM"
	}
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%02d:%02d:%02d %s", hours, secs%3600/60, secs%60, meridiem)
}

// DaySuffix renders a difference in seconds as a signed whole-day count:
// " +N days" or " -N days", or the empty string when the difference spans
// less than a day. The leading space is part of the suffix.
func DaySuffix(diff int64) string {
	days := diff / secondsPerDay
	switch {
	case days > 0:
		return fmt.Sprintf(" +%d days", days)
	case days < 0:
		return fmt.Sprintf(" -%d days", -days)
	}
	return ""
}
