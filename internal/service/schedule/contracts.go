package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// ScheduleRepository интерфейс репозитория мастеров и расписания
type ScheduleRepository interface {
	GetDefaultStaffID(ctx context.Context) (uuid.UUID, error)
	GetWorkingHours(ctx context.Context, staffID uuid.UUID, weekday int) (*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
