package movement

import (
	"fmt"
	"strconv"
	"strings"
)

var fieldNames = [3]string{"hours", "minutes", "seconds"}

// ToSeconds converts a time string of the form "H[:MM[:SS]]", optionally
// followed by a space and an AM/PM marker, to a count of seconds. The
// marker is matched case-insensitively with periods stripped, so "p.m."
// counts, and adds 12 hours — but only when absolute is true; time spans
// have no meridiem. Absent or malformed fields count as zero, and no range
// checks are applied: an hour of 25 simply yields more than a day's worth
// of seconds.
func ToSeconds(s string, absolute bool) int64 {
	secs, _ := parseSeconds(s, absolute, false)
	return secs
}

// ParseSeconds is a strict [ToSeconds]: a field that is present but not an
// integer yields an error instead of counting as zero. Absent and empty
// fields still count as zero, so every string accepted here converts
// identically through ToSeconds.
func ParseSeconds(s string, absolute bool) (int64, error) {
	return parseSeconds(s, absolute, true)
}

func parseSeconds(s string, absolute, strict bool) (int64, error) {
	pm := absolute && strings.Contains(strings.ToUpper(strings.ReplaceAll(s, ".", "")), "PM")

	// The clock portion is everything before the first space.
	clock := s
	if i := strings.IndexByte(clock, ' '); i >= 0 {
		clock = clock[:i]
	}

	var units [3]int64 // hours, minutes, seconds
	fields := strings.Split(clock, ":")
	for i := range units {
		if i >= len(fields) || fields[i] == "" {
			continue
		}
		n, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			if strict {
				return 0, fmt.Errorf("movement: bad %s field %q in %q: %w", fieldNames[i], fields[i], s, err)
			}
			continue
		}
		units[i] = n
	}

	hours, minutes, seconds := units[0], units[1], units[2]
	if pm {
		hours += 12
	}
	return hours*3600 + minutes*60 + seconds, nil
}
