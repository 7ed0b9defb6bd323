package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/pkg/types"
)

// Outcome результат команды записи. Конфликт и ошибка валидации - штатные исходы, а не ошибки
type Outcome string

const (
	OutcomeBooked           Outcome = "booked"
	OutcomeConflict         Outcome = "conflict"
	OutcomeValidationFailed Outcome = "validation_failed"
)

// Request модель запроса на запись, поля в том виде, как пришли от клиента
type Request struct {
	Locale  string
	Date    string // YYYY-MM-DD
	Start   string // HH:MM
	Key     string // slug услуги или оффера
	Name    string
	Phone   string
	Comment *string
}

// Violation причина отказа по конкретному полю
type Violation struct {
	Field  string
	Reason string
}

// Response результат команды записи
type Response struct {
	Outcome   Outcome
	Violation *Violation // только для OutcomeValidationFailed

	// Заполнены только для OutcomeBooked
	AppointmentID   uuid.UUID
	Date            time.Time
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}

func validationFailed(field, reason string) *Response {
	return &Response{
		Outcome:   OutcomeValidationFailed,
		Violation: &Violation{Field: field, Reason: reason},
	}
}
