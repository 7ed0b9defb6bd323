package create_appointment

import (
	"errors"
	"net/http"

	"github.com/hmax24/beauty-salon/internal/api/handlers"
	createAppointment "github.com/hmax24/beauty-salon/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownKey         = "service or offer not found"
	msgTimeNotAvailable   = "time is no longer available"
)

type Handler struct {
	useCase       CreateAppointmentUseCase
	defaultLocale string
	logger        Logger
}

func NewHandler(useCase CreateAppointmentUseCase, defaultLocale string, logger Logger) *Handler {
	return &Handler{
		useCase:       useCase,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := body.ToUseCaseRequest(h.defaultLocale)

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrUnknownKey):
			h.logger.Warn("POST /appointments - Unknown key: key=%s", req.Key)
			handlers.RespondNotFound(w, msgUnknownKey)
		default:
			h.logger.Error("POST /appointments - Failed to create appointment: key=%s, date=%s, start=%s, error=%v",
				req.Key, req.Date, req.Start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Конфликт и ошибка валидации - исходы, а не ошибки use case
	switch resp.Outcome {
	case createAppointment.OutcomeBooked:
		h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, start=%s",
			resp.AppointmentID, req.Date, req.Start)
		handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
	case createAppointment.OutcomeConflict:
		h.logger.Warn("POST /appointments - Time taken: date=%s, start=%s", req.Date, req.Start)
		handlers.RespondConflict(w, msgTimeNotAvailable)
	case createAppointment.OutcomeValidationFailed:
		field, reason := "", msgInvalidRequestBody
		if resp.Violation != nil {
			field, reason = resp.Violation.Field, resp.Violation.Reason
		}
		h.logger.Warn("POST /appointments - Validation failed: field=%s, reason=%s", field, reason)
		handlers.RespondValidationError(w, field, reason)
	default:
		h.logger.Error("POST /appointments - Unexpected outcome: %s", resp.Outcome)
		handlers.RespondInternalError(w)
	}
}
