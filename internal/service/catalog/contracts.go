package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг и офферов
type CatalogRepository interface {
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	GetOfferBySlug(ctx context.Context, slug string) (*domain.Offer, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListOffers(ctx context.Context) ([]domain.Offer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
