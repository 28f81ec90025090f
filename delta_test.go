package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noodlebox/movement"
)

func TestAddDoesNotMutate(t *testing.T) {
	watch := movement.New("13:34", true)

	got := movement.Add(watch, "01:23:45")
	assert.Equal(t, "02:57:45 PM", got.String())
	assert.Zero(t, watch.Offset, "Add must leave the receiver untouched")

	got = movement.Sub(watch, 100)
	assert.Equal(t, int64(-100), got.Offset)
	assert.Zero(t, watch.Offset)
}

func TestMixedOperandKinds(t *testing.T) {
	// int, int64, and string operands all flow through the same delta
	// normalization.
	watch := movement.New("00:00:00", false)

	movement.AddAssign(&watch, 30)
	movement.AddAssign(&watch, int64(30))
	movement.AddAssign(&watch, "00:01:00")
	assert.Equal(t, int64(120), watch.Offset)

	movement.SubAssign(&watch, 30)
	movement.SubAssign(&watch, int64(30))
	movement.SubAssign(&watch, "00:01:00")
	assert.Zero(t, watch.Offset)
}

func TestSpanOperandIgnoresMeridiem(t *testing.T) {
	// A PM marker on a span operand carries no meaning; "01:00:00 PM" is
	// one hour, not thirteen.
	watch := movement.New("00:00:00", false)
	movement.AddAssign(&watch, "01:00:00 PM")
	assert.Equal(t, int64(3600), watch.Offset)
}

func TestMalformedSpanCountsAsZero(t *testing.T) {
	watch := movement.New("13:33:23", false)
	movement.AddAssign(&watch, "nonsense")
	assert.Equal(t, "13:33:23", watch.String())
}

func TestChainedCopies(t *testing.T) {
	base := movement.New("13:34", true)

	later := movement.Add(movement.Add(base, "01:23:45"), 43434343)
	assert.Equal(t, "08:03:28 AM +503 days", later.String())
	assert.Equal(t, "01:34:00 PM", base.String())
}
