package get_catalog

import (
	"context"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ListCatalog(ctx context.Context, locale string) ([]domain.CatalogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
