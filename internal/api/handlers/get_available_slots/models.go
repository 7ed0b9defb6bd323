package get_available_slots

import (
	"github.com/hmax24/beauty-salon/internal/domain"
	getAvailableSlots "github.com/hmax24/beauty-salon/internal/usecase/get_available_slots"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// SlotsResponse DTO ответа GET /api/v1/slots
type SlotsResponse struct {
	Date                   string               `json:"date"`
	CatalogKey             string               `json:"catalogKey"`
	DurationMinutes        int                  `json:"durationMinutes"`
	SlotGranularityMinutes *int                 `json:"slotGranularityMinutes"`
	WorkingHours           *WorkingHoursPayload `json:"workingHours"`
	Slots                  []SlotPayload        `json:"slots"`
}

type WorkingHoursPayload struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

type SlotPayload struct {
	Start     types.TimeString `json:"start"`
	End       types.TimeString `json:"end"`
	Available bool             `json:"available"`
}

// FromUseCaseResponse преобразует ответ use case в DTO. slots всегда массив, не null
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		CatalogKey:             resp.CatalogKey,
		DurationMinutes:        resp.DurationMinutes,
		SlotGranularityMinutes: resp.SlotGranularityMinutes,
		Slots:                  make([]SlotPayload, 0, len(resp.Slots)),
	}

	if resp.WorkingHours != nil {
		out.WorkingHours = &WorkingHoursPayload{
			Start: resp.WorkingHours.Start,
			End:   resp.WorkingHours.End,
		}
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotPayload{Start: s.Start, End: s.End, Available: s.Available})
	}

	return out
}
