package get_available_slots

import (
	"time"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// Request модель запроса слотов, поля в том виде, как пришли от клиента
type Request struct {
	Locale string
	Date   string // YYYY-MM-DD
	Key    string // slug услуги или оффера
}

// Response модель ответа со слотами на дату
type Response struct {
	Date                   time.Time
	CatalogKey             string
	DurationMinutes        int
	SlotGranularityMinutes *int          // nil, если день выходной
	WorkingHours           *WorkingHours // nil, если день выходной
	Slots                  []domain.AvailableSlot
}

// WorkingHours рабочее окно дня
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}
