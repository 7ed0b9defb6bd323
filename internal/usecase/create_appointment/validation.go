package create_appointment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// command разобранный и нормализованный запрос
type command struct {
	locale  string
	date    time.Time
	start   types.TimeString
	key     string
	name    string
	phone   string
	comment *string
}

// validateRequest проверяет поля запроса до любого обращения к хранилищу.
// Возвращает либо разобранную команду, либо нарушение
func validateRequest(req *Request, locales map[string]struct{}, maxCommentLength int) (*command, *Violation) {
	if _, ok := locales[req.Locale]; !ok {
		return nil, &Violation{Field: "locale", Reason: "unsupported locale"}
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, &Violation{Field: "date", Reason: "expected a calendar date in YYYY-MM-DD format"}
	}

	// Строго HH:MM: формат колонки "HH:MM:SS" от клиента не принимаем
	if len(req.Start) != len(domain.TimeFormat) {
		return nil, &Violation{Field: "start", Reason: "expected time in HH:MM format"}
	}
	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil || start.Minutes() >= types.MinutesPerDay {
		return nil, &Violation{Field: "start", Reason: "expected time in HH:MM format"}
	}

	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, &Violation{Field: "key", Reason: "catalog key is required"}
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < domain.MinClientNameLength {
		return nil, &Violation{Field: "name", Reason: "name is too short"}
	}

	phone := strings.TrimSpace(req.Phone)
	if utf8.RuneCountInString(phone) < domain.MinClientPhoneLength {
		return nil, &Violation{Field: "phone", Reason: "phone is too short"}
	}

	var comment *string
	if req.Comment != nil {
		c := strings.TrimSpace(*req.Comment)
		if utf8.RuneCountInString(c) > maxCommentLength {
			return nil, &Violation{Field: "comment", Reason: "comment is too long"}
		}
		// пустой комментарий хранится как NULL
		if c != "" {
			comment = &c
		}
	}

	return &command{
		locale:  req.Locale,
		date:    date,
		start:   start,
		key:     key,
		name:    name,
		phone:   phone,
		comment: comment,
	}, nil
}
