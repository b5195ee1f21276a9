package checkout

import (
	"testing"
	"time"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(config.StoreHours{Open: 9, Close: 21})

	require.Len(t, slots, 4)
	assert.Equal(t, TimeSlot{Value: "09:00", Label: "9:00 AM - 12:00 PM"}, slots[0])
	assert.Equal(t, TimeSlot{Value: "12:00", Label: "12:00 PM - 3:00 PM"}, slots[1])
	assert.Equal(t, TimeSlot{Value: "15:00", Label: "3:00 PM - 6:00 PM"}, slots[2])
	assert.Equal(t, TimeSlot{Value: "18:00", Label: "6:00 PM - 9:00 PM"}, slots[3])
}

func TestValidSlot(t *testing.T) {
	hours := config.StoreHours{Open: 9, Close: 21}

	assert.True(t, ValidSlot(hours, "09:00"))
	assert.True(t, ValidSlot(hours, "18:00"))
	assert.False(t, ValidSlot(hours, "21:00"))
	assert.False(t, ValidSlot(hours, "bogus"))
	assert.False(t, ValidSlot(hours, ""))
}

func TestNextDayDate(t *testing.T) {
	want := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	assert.Equal(t, want, NextDayDate())
}
