package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmax24/beauty-salon/internal/domain"
	catalogService "github.com/hmax24/beauty-salon/internal/service/catalog"
	"github.com/hmax24/beauty-salon/internal/slots"
	"github.com/hmax24/beauty-salon/pkg/ptr"
)

// UseCase use case для получения слотов на дату.
// Доступность здесь только для отображения и может устареть к моменту записи
type UseCase struct {
	catalog         CatalogResolver
	schedule        ScheduleProvider
	appointmentRepo AppointmentRepository
	locales         map[string]struct{}
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogResolver,
	schedule ScheduleProvider,
	appointmentRepo AppointmentRepository,
	locales []string,
	logger Logger,
) *UseCase {
	set := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		set[l] = struct{}{}
	}
	return &UseCase{
		catalog:         catalog,
		schedule:        schedule,
		appointmentRepo: appointmentRepo,
		locales:         set,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: locale=%s, date=%s, key=%s", req.Locale, req.Date, req.Key)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.locales)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	key := strings.TrimSpace(req.Key)

	// 2. Длительность услуги или оффера
	duration, err := uc.catalog.ResolveDuration(ctx, req.Locale, key)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrNotFound):
			uc.logger.Warn("GetAvailableSlots: key=%s not found", key)
			return nil, ErrUnknownKey
		case errors.Is(err, catalogService.ErrInvalidDuration):
			uc.logger.Warn("GetAvailableSlots: key=%s has no positive duration", key)
			return nil, &FieldError{Field: "key", Reason: "catalog item has no bookable duration"}
		default:
			uc.logger.Error("GetAvailableSlots: failed to resolve key=%s: %v", key, err)
			return nil, fmt.Errorf("%w: resolve duration: %v", ErrInternal, err)
		}
	}

	resp := &Response{
		Date:            date,
		CatalogKey:      key,
		DurationMinutes: duration,
		Slots:           []domain.AvailableSlot{},
	}

	// 3. Мастер по умолчанию
	staffID, err := uc.schedule.DefaultStaffID(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get default staff: %v", err)
		return nil, fmt.Errorf("%w: default staff: %v", ErrInternal, err)
	}

	// 4. Рабочие часы на дату
	wh, err := uc.schedule.GetWorkingHours(ctx, date, staffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: working hours: %v", ErrInternal, err)
	}
	if wh == nil {
		uc.logger.Info("GetAvailableSlots: closed on date=%s", req.Date)
		return resp, nil
	}
	resp.WorkingHours = &WorkingHours{Start: wh.OpenTime, End: wh.CloseTime}
	resp.SlotGranularityMinutes = ptr.Ptr(wh.SlotMinutes)

	// 5. Кандидаты на сетке
	candidates := slots.Generate(wh.OpenTime, wh.CloseTime, wh.SlotMinutes, duration)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: duration=%d does not fit working hours %s-%s",
			duration, wh.OpenTime, wh.CloseTime)
		return resp, nil
	}

	// 6. Занятые интервалы
	booked, err := uc.appointmentRepo.ListBookedBlocks(ctx, staffID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list booked blocks: %v", err)
		return nil, fmt.Errorf("%w: booked blocks: %v", ErrInternal, err)
	}

	// 7. Разметка доступности
	resp.Slots = slots.ResolveAvailability(candidates, booked)

	uc.logger.Info("GetAvailableSlots: date=%s, key=%s, candidates=%d, booked=%d",
		req.Date, key, len(candidates), len(booked))
	return resp, nil
}
