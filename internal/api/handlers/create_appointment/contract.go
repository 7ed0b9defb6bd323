package create_appointment

import (
	"context"

	createAppointment "github.com/hmax24/beauty-salon/internal/usecase/create_appointment"
)

// CreateAppointmentUseCase интерфейс use case записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
