package slots

import (
	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// Overlaps пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd).
// Касание границ пересечением не считается
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// ResolveAvailability помечает каждого кандидата: доступен, если не пересекается
// ни с одним занятым блоком. Порядок кандидатов сохраняется
func ResolveAvailability(candidates []domain.Slot, booked []domain.Block) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0, len(candidates))
	for _, c := range candidates {
		available := true
		for _, b := range booked {
			if Overlaps(c.Start, c.End, b.Start, b.End) {
				available = false
				break
			}
		}
		result = append(result, domain.AvailableSlot{Slot: c, Available: available})
	}
	return result
}
