package catalog

import (
	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
)

// Resolution результат разрешения ключа каталога
type Resolution struct {
	Kind            domain.CatalogKind
	Key             string
	ServiceID       *uuid.UUID // для услуги
	OfferID         *uuid.UUID // для оффера
	DurationMinutes int
}
