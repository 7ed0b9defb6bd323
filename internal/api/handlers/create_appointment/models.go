package create_appointment

import (
	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	createAppointment "github.com/hmax24/beauty-salon/internal/usecase/create_appointment"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// CreateAppointmentRequest DTO тела POST /api/v1/appointments
type CreateAppointmentRequest struct {
	Locale  string  `json:"locale"`
	Date    string  `json:"date"`
	Start   string  `json:"start"`
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Comment *string `json:"comment,omitempty"`
}

// AppointmentResponse DTO созданной записи
type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	Date            string           `json:"date"`
	Start           types.TimeString `json:"start"`
	End             types.TimeString `json:"end"`
	DurationMinutes int              `json:"durationMinutes"`
}

func (r *CreateAppointmentRequest) ToUseCaseRequest(defaultLocale string) *createAppointment.Request {
	locale := r.Locale
	if locale == "" {
		locale = defaultLocale
	}
	return &createAppointment.Request{
		Locale:  locale,
		Date:    r.Date,
		Start:   r.Start,
		Key:     r.Key,
		Name:    r.Name,
		Phone:   r.Phone,
		Comment: r.Comment,
	}
}

func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.AppointmentID,
		Date:            resp.Date.Format(domain.DateFormat),
		Start:           resp.Start,
		End:             resp.End,
		DurationMinutes: resp.DurationMinutes,
	}
}
