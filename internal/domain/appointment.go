package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
// Only "booked" is persisted: a proposal either becomes booked or is rejected
type AppointmentStatus string

const (
	StatusBooked AppointmentStatus = "booked"
)

// Appointment is a committed exclusive reservation of a staff member's time
type Appointment struct {
	ID            uuid.UUID
	StaffID       uuid.UUID
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ServiceID     *uuid.UUID // set when booked by service key
	OfferID       *uuid.UUID // set when booked by offer key
	ClientName    string
	ClientPhone   string
	ClientComment *string
	Status        AppointmentStatus
	CreatedAt     time.Time
}

// DurationMinutes length of the reserved interval
func (a *Appointment) DurationMinutes() int {
	return a.EndTime.Sub(a.StartTime)
}
