package domain

import "github.com/hmax24/beauty-salon/pkg/types"

// Slot is a candidate interval [Start, End) on the granularity grid
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// Block is an already booked interval [Start, End) for a staff member on a date
type Block struct {
	Start types.TimeString
	End   types.TimeString
}

// AvailableSlot is a candidate annotated with availability
type AvailableSlot struct {
	Slot
	Available bool
}
