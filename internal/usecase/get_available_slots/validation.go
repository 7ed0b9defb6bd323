package get_available_slots

import (
	"strings"
	"time"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// validateRequest проверяет запрос и возвращает разобранную дату
func validateRequest(req *Request, locales map[string]struct{}) (time.Time, error) {
	if _, ok := locales[req.Locale]; !ok {
		return time.Time{}, &FieldError{Field: "locale", Reason: "unsupported locale"}
	}

	if req.Date == "" {
		return time.Time{}, &FieldError{Field: "date", Reason: "date is required"}
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, &FieldError{Field: "date", Reason: "expected a calendar date in YYYY-MM-DD format"}
	}

	if strings.TrimSpace(req.Key) == "" {
		return time.Time{}, &FieldError{Field: "key", Reason: "catalog key is required"}
	}

	return date, nil
}
