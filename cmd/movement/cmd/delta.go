package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noodlebox/movement"
)

// applyDelta applies one command-line delta argument to the watch. An
// argument is an optionally signed count of seconds ("+1000", "-86400",
// "4343") or an optionally signed time span ("+01:23:45", "-0:23:03"); no
// sign means add. Span arguments are validated strictly so that a typo
// fails the command instead of silently counting as zero.
func applyDelta(w *movement.Watch, arg string) error {
	sub := false
	body := arg
	switch {
	case strings.HasPrefix(arg, "+"):
		body = arg[1:]
	case strings.HasPrefix(arg, "-"):
		sub = true
		body = arg[1:]
	}

	secs, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		secs, err = movement.ParseSeconds(body, false)
		if err != nil {
			return fmt.Errorf("bad delta %q: %w", arg, err)
		}
	}

	if sub {
		movement.SubAssign(w, secs)
	} else {
		movement.AddAssign(w, secs)
	}
	return nil
}
