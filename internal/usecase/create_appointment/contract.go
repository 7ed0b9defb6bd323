package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	catalogService "github.com/hmax24/beauty-salon/internal/service/catalog"
)

// CatalogResolver разрешает ключ каталога в длительность и ссылку на услугу/оффер
type CatalogResolver interface {
	Resolve(ctx context.Context, locale, key string) (*catalogService.Resolution, error)
}

// ScheduleProvider отдаёт мастера по умолчанию и его рабочие часы
type ScheduleProvider interface {
	DefaultStaffID(ctx context.Context) (uuid.UUID, error)
	GetWorkingHours(ctx context.Context, date time.Time, staffID uuid.UUID) (*domain.WorkingHours, error)
}

// AppointmentRepository интерфейс репозитория записей.
// Create обязан атомарно отклонять пересечение с уже записанными интервалами (appointment.ErrOverlap)
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// OutcomeRecorder счётчик результатов команды записи
type OutcomeRecorder interface {
	IncAppointmentOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopRecorder не считает ничего, когда метрики выключены
type NopRecorder struct{}

func (NopRecorder) IncAppointmentOutcome(string) {}
