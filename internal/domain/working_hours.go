package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/pkg/types"
)

// WorkingHours of a staff member for one ISO weekday
type WorkingHours struct {
	ID          uuid.UUID
	StaffID     uuid.UUID
	Weekday     int // ISO: Monday=1 ... Sunday=7
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	SlotMinutes int // slot grid granularity
	IsActive    bool
}

// IsoWeekday converts a date to ISO weekday number (Monday=1 ... Sunday=7)
func IsoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
