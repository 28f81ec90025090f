package movement

// Delta is the type set of operands accepted by watch arithmetic: a count
// of seconds or a time-span string such as "01:23:45". Both kinds flow
// through the same normalization, so call sites may mix them freely.
type Delta interface {
	int | int64 | string
}

// deltaSeconds normalizes an operand to a signed count of seconds. Strings
// are parsed as time spans, so any AM/PM marker they carry is ignored.
func deltaSeconds[D Delta](d D) int64 {
	switch v := any(d).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		return ToSeconds(v, false)
	}
	return 0 // unreachable; the type set is exhaustive
}

// Add returns a copy of w with the delta added to its offset. The start
// time is untouched; w itself is unchanged.
func Add[D Delta](w Watch, d D) Watch {
	w.Offset += deltaSeconds(d)
	return w
}

// Sub returns a copy of w with the delta subtracted from its offset. The
// start time is untouched; w itself is unchanged.
func Sub[D Delta](w Watch, d D) Watch {
	w.Offset -= deltaSeconds(d)
	return w
}

// AddAssign adds the delta to w's offset in place.
func AddAssign[D Delta](w *Watch, d D) {
	w.Offset += deltaSeconds(d)
}

// SubAssign subtracts the delta from w's offset in place.
func SubAssign[D Delta](w *Watch, d D) {
	w.Offset -= deltaSeconds(d)
}
