package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	scheduleRepo "github.com/hmax24/beauty-salon/internal/infra/storage/schedule"
)

// Service отдаёт рабочие часы мастера на дату
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// DefaultStaffID мастер по умолчанию: пока в салоне один мастер, это самый первый активный
func (s *Service) DefaultStaffID(ctx context.Context) (uuid.UUID, error) {
	id, err := s.repo.GetDefaultStaffID(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNoStaff) {
			s.logger.Error("DefaultStaffID: no active staff configured")
			return uuid.Nil, ErrNoStaff
		}
		s.logger.Error("DefaultStaffID: repository error: %v", err)
		return uuid.Nil, fmt.Errorf("%w: DefaultStaffID - repository error: %v", ErrInternal, err)
	}
	return id, nil
}

// GetWorkingHours возвращает рабочие часы на ISO день недели даты.
// nil, nil - выходной: это нормальное состояние, а не ошибка
func (s *Service) GetWorkingHours(ctx context.Context, date time.Time, staffID uuid.UUID) (*domain.WorkingHours, error) {
	weekday := domain.IsoWeekday(date)

	wh, err := s.repo.GetWorkingHours(ctx, staffID, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			s.logger.Info("GetWorkingHours: closed on date=%s (weekday=%d), staff=%s",
				date.Format(domain.DateFormat), weekday, staffID)
			return nil, nil
		}
		s.logger.Error("GetWorkingHours: repository error for staff=%s, weekday=%d: %v", staffID, weekday, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return wh, nil
}
