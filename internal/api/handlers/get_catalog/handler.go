package get_catalog

import (
	"net/http"

	"github.com/hmax24/beauty-salon/internal/api/handlers"
)

const (
	fieldLocale          = "locale"
	msgUnsupportedLocale = "unsupported locale"
)

type Handler struct {
	service       CatalogService
	defaultLocale string
	locales       map[string]struct{}
	logger        Logger
}

func NewHandler(service CatalogService, defaultLocale string, locales []string, logger Logger) *Handler {
	set := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		set[l] = struct{}{}
	}
	return &Handler{
		service:       service,
		defaultLocale: defaultLocale,
		locales:       set,
		logger:        logger,
	}
}

// Handle GET /api/v1/catalog
// Query params: locale (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.defaultLocale
	}
	if _, ok := h.locales[locale]; !ok {
		h.logger.Warn("GET /catalog - Unsupported locale: %s", locale)
		handlers.RespondValidationError(w, fieldLocale, msgUnsupportedLocale)
		return
	}

	entries, err := h.service.ListCatalog(r.Context(), locale)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to list catalog: locale=%s, error=%v", locale, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Catalog returned: locale=%s, items=%d", locale, len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(entries))
}
