// Package slots чистые функции построения сетки слотов и проверки пересечений.
// Без ввода-вывода и скрытого состояния: одинаковые входные данные дают одинаковый результат
package slots

import (
	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/types"
)

// Generate строит кандидатов [t, t+duration) с шагом granularity, начиная с open.
// Последний старт - close-duration, поэтому конец слота никогда не выходит за close.
// Неположительные granularity/duration или duration длиннее рабочего окна дают пустой результат
func Generate(open, close types.TimeString, granularity, duration int) []domain.Slot {
	result := make([]domain.Slot, 0)
	if granularity <= 0 || duration <= 0 || open.IsZero() || close.IsZero() {
		return result
	}

	lastStart := close.Minutes() - duration
	for t := open.Minutes(); t <= lastStart; t += granularity {
		start, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		end, err := types.NewTimeStringFromMinutes(t + duration)
		if err != nil {
			break
		}
		result = append(result, domain.Slot{Start: start, End: end})
	}

	return result
}

// Find возвращает кандидата с указанным началом, если он есть в сетке
func Find(candidates []domain.Slot, start types.TimeString) (domain.Slot, bool) {
	for _, c := range candidates {
		if c.Start.Equal(start) {
			return c, true
		}
	}
	return domain.Slot{}, false
}
