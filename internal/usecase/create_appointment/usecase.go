package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmax24/beauty-salon/internal/domain"
	appointmentRepo "github.com/hmax24/beauty-salon/internal/infra/storage/appointment"
	catalogService "github.com/hmax24/beauty-salon/internal/service/catalog"
	"github.com/hmax24/beauty-salon/internal/slots"
)

// UseCase use case для записи клиента.
// Эксклюзивность интервала обеспечивает хранилище при вставке, блокировок в приложении нет
type UseCase struct {
	catalog          CatalogResolver
	schedule         ScheduleProvider
	appointmentRepo  AppointmentRepository
	outcomes         OutcomeRecorder
	locales          map[string]struct{}
	maxCommentLength int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogResolver,
	schedule ScheduleProvider,
	appointmentRepo AppointmentRepository,
	outcomes OutcomeRecorder,
	locales []string,
	maxCommentLength int,
	logger Logger,
) *UseCase {
	set := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		set[l] = struct{}{}
	}
	if outcomes == nil {
		outcomes = NopRecorder{}
	}
	if maxCommentLength <= 0 {
		maxCommentLength = domain.MaxCommentLength
	}
	return &UseCase{
		catalog:          catalog,
		schedule:         schedule,
		appointmentRepo:  appointmentRepo,
		outcomes:         outcomes,
		locales:          set,
		maxCommentLength: maxCommentLength,
		logger:           logger,
	}
}

// Execute выполняет use case записи.
// Ровно одна запись в хранилище при OutcomeBooked, ни одной при любом другом исходе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: locale=%s, date=%s, start=%s, key=%s", req.Locale, req.Date, req.Start, req.Key)

	resp, err := uc.execute(ctx, req)
	switch {
	case errors.Is(err, ErrUnknownKey):
		uc.outcomes.IncAppointmentOutcome("unknown_key")
	case err != nil:
		uc.outcomes.IncAppointmentOutcome("internal")
	default:
		uc.outcomes.IncAppointmentOutcome(string(resp.Outcome))
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (без обращений к хранилищу)
	cmd, violation := validateRequest(req, uc.locales, uc.maxCommentLength)
	if violation != nil {
		uc.logger.Warn("CreateAppointment: validation failed: field=%s, reason=%s", violation.Field, violation.Reason)
		return &Response{Outcome: OutcomeValidationFailed, Violation: violation}, nil
	}

	// 2. Длительность пересчитывается по текущему каталогу, клиенту не доверяем
	res, err := uc.catalog.Resolve(ctx, cmd.locale, cmd.key)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrNotFound):
			uc.logger.Warn("CreateAppointment: key=%s not found", cmd.key)
			return nil, ErrUnknownKey
		case errors.Is(err, catalogService.ErrInvalidDuration):
			uc.logger.Warn("CreateAppointment: key=%s has no positive duration", cmd.key)
			return validationFailed("key", "catalog item has no bookable duration"), nil
		default:
			uc.logger.Error("CreateAppointment: failed to resolve key=%s: %v", cmd.key, err)
			return nil, fmt.Errorf("%w: resolve duration: %v", ErrInternal, err)
		}
	}

	end, err := cmd.start.AddMinutes(res.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: start=%s + %d min is past midnight", cmd.start, res.DurationMinutes)
		return validationFailed("start", "appointment would end after midnight"), nil
	}

	// 3. Мастер по умолчанию
	staffID, err := uc.schedule.DefaultStaffID(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get default staff: %v", err)
		return nil, fmt.Errorf("%w: default staff: %v", ErrInternal, err)
	}

	// 4. Старт должен быть слотом, который показал бы генератор (занятость не проверяем).
	// Это строже, чем нужно хранилищу: constraint принял бы любой непересекающийся HH:MM,
	// но запись в выходной или вне сетки слотов отклоняется как ошибка валидации
	wh, err := uc.schedule.GetWorkingHours(ctx, cmd.date, staffID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: working hours: %v", ErrInternal, err)
	}
	if wh == nil {
		uc.logger.Warn("CreateAppointment: closed on date=%s", req.Date)
		return validationFailed("date", "salon is closed on this date"), nil
	}
	candidates := slots.Generate(wh.OpenTime, wh.CloseTime, wh.SlotMinutes, res.DurationMinutes)
	if _, ok := slots.Find(candidates, cmd.start); !ok {
		uc.logger.Warn("CreateAppointment: start=%s is not a slot within %s-%s step=%d duration=%d",
			cmd.start, wh.OpenTime, wh.CloseTime, wh.SlotMinutes, res.DurationMinutes)
		return validationFailed("start", "start time is not an offered slot"), nil
	}

	// 5. Атомарная вставка: пересечение отклоняет exclusion constraint
	created, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		StaffID:       staffID,
		Date:          cmd.date,
		StartTime:     cmd.start,
		EndTime:       end,
		ServiceID:     res.ServiceID,
		OfferID:       res.OfferID,
		ClientName:    cmd.name,
		ClientPhone:   cmd.phone,
		ClientComment: cmd.comment,
		Status:        domain.StatusBooked,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlap) {
			uc.logger.Warn("CreateAppointment: conflict on date=%s, %s-%s, staff=%s", req.Date, cmd.start, end, staffID)
			return &Response{Outcome: OutcomeConflict}, nil
		}
		uc.logger.Error("CreateAppointment: failed to insert appointment: %v", err)
		return nil, fmt.Errorf("%w: insert appointment: %v", ErrInternal, err)
	}

	// 6. Успех
	uc.logger.Info("CreateAppointment: booked id=%s, date=%s, %s-%s, key=%s",
		created.ID, req.Date, created.StartTime, created.EndTime, cmd.key)

	return &Response{
		Outcome:         OutcomeBooked,
		AppointmentID:   created.ID,
		Date:            created.Date,
		Start:           created.StartTime,
		End:             created.EndTime,
		DurationMinutes: res.DurationMinutes,
	}, nil
}
