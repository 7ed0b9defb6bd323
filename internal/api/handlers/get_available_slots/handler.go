package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/hmax24/beauty-salon/internal/api/handlers"
	getAvailableSlots "github.com/hmax24/beauty-salon/internal/usecase/get_available_slots"
)

const (
	msgUnknownKey = "service or offer not found"
)

type Handler struct {
	useCase       GetAvailableSlotsUseCase
	defaultLocale string
	logger        Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, defaultLocale string, logger Logger) *Handler {
	return &Handler{
		useCase:       useCase,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Handle GET /api/v1/slots
// Query params: key (required), date (required, YYYY-MM-DD), locale (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	locale := query.Get("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	req := &getAvailableSlots.Request{
		Locale: locale,
		Date:   query.Get("date"),
		Key:    query.Get("key"),
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var fieldErr *getAvailableSlots.FieldError
		switch {
		case errors.As(err, &fieldErr):
			h.logger.Warn("GET /slots - Invalid %s: %s", fieldErr.Field, fieldErr.Reason)
			handlers.RespondValidationError(w, fieldErr.Field, fieldErr.Reason)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, getAvailableSlots.ErrUnknownKey):
			h.logger.Warn("GET /slots - Unknown key: key=%s", req.Key)
			handlers.RespondNotFound(w, msgUnknownKey)
		default:
			h.logger.Error("GET /slots - Failed to get slots: key=%s, date=%s, error=%v", req.Key, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots returned: key=%s, date=%s, count=%d", req.Key, req.Date, len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
