package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 24)
	assert.Equal(t, TimeSlot{Label: "12 AM", Hour24: 0}, slots[0])
	assert.Equal(t, TimeSlot{Label: "11 AM", Hour24: 11}, slots[11])
	assert.Equal(t, TimeSlot{Label: "12 PM", Hour24: 12}, slots[12])
	assert.Equal(t, TimeSlot{Label: "11 PM", Hour24: 23}, slots[23])

	for i, s := range slots {
		assert.Equal(t, i, s.Hour24)
	}

	// callers get their own copy
	slots[0].Label = "changed"
	assert.Equal(t, "12 AM", TimeSlots()[0].Label)
}

func TestParseSlotLabel(t *testing.T) {
	for h := 0; h < 24; h++ {
		got, err := ParseSlotLabel(SlotLabel(h))
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	got, err := ParseSlotLabel("3 pm")
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestParseSlotLabel_Invalid(t *testing.T) {
	for _, label := range []string{"", "15", "0 AM", "13 PM", "3 XM", "three PM"} {
		_, err := ParseSlotLabel(label)
		assert.ErrorIs(t, err, ErrInvalidSlotLabel, label)
	}
}
