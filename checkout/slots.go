package checkout

import (
	"fmt"
	"time"

	"github.com/evergreenlots/treestore-api/config"
)

// TimeSlot is a bookable fulfillment window.
type TimeSlot struct {
	Value string `json:"value"` // 24h start time, e.g. "09:00"
	Label string `json:"label"` // e.g. "9:00 AM - 12:00 PM"
}

// NextDayDate returns tomorrow's date (orders are always fulfilled
// next-day) in YYYY-MM-DD form.
func NextDayDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

// TimeSlots builds the 3-hour windows between the store's opening
// hours.
func TimeSlots(hours config.StoreHours) []TimeSlot {
	var slots []TimeSlot
	for hour := hours.Open; hour <= hours.Close-3; hour += 3 {
		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%02d:00", hour),
			Label: fmt.Sprintf("%s - %s", clockLabel(hour), clockLabel(hour+3)),
		})
	}
	return slots
}

// ValidSlot reports whether value names one of the store's slots.
func ValidSlot(hours config.StoreHours, value string) bool {
	for _, slot := range TimeSlots(hours) {
		if slot.Value == value {
			return true
		}
	}
	return false
}

func clockLabel(hour int) string {
	display := hour % 12
	if display == 0 {
		display = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, period)
}
