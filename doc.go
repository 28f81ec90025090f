// Package movement offers simple watch arithmetic: a [Watch] keeps a fixed
// starting time and an accumulating offset, both counted in int64 seconds,
// and renders the resulting end time in 24-hour or 12-hour format with a
// +/- days suffix for day rollover. The most common use case is computing
// the end time of a watch given its start time and one or more time spans.
//
// A Watch is constructed from a clock string in either format ("13:34",
// "01:34 PM"); the display format is chosen independently by the meridiem
// flag and may be changed later with [Watch.ChangeMeridiem]. Deltas are
// applied through the generic [Add], [Sub], [AddAssign], and [SubAssign]
// functions, which accept either a count of seconds or a time-span string:
//
//	watch := movement.New("13:34", true)
//	movement.AddAssign(&watch, "01:23:45")
//	movement.AddAssign(&watch, 43434343)
//	fmt.Println(watch)
//	// 08:03:28 AM +503 days
//
// Watch values are plain and independently copyable; nothing in this
// package blocks, and only [Now] reads the system clock.
package movement
