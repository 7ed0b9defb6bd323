package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// CatalogResolver разрешает ключ каталога в длительность
type CatalogResolver interface {
	ResolveDuration(ctx context.Context, locale, key string) (int, error)
}

// ScheduleProvider отдаёт мастера по умолчанию и его рабочие часы
type ScheduleProvider interface {
	DefaultStaffID(ctx context.Context) (uuid.UUID, error)
	GetWorkingHours(ctx context.Context, date time.Time, staffID uuid.UUID) (*domain.WorkingHours, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListBookedBlocks(ctx context.Context, staffID uuid.UUID, date time.Time) ([]domain.Block, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
