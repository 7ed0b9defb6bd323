package get_catalog

import "github.com/hmax24/beauty-salon/internal/domain"

// CatalogResponse DTO ответа GET /api/v1/catalog
type CatalogResponse struct {
	Items []CatalogItem `json:"items"`
}

type CatalogItem struct {
	Kind            domain.CatalogKind `json:"kind"`
	Key             string             `json:"key"`
	Title           string             `json:"title"`
	DurationMinutes int                `json:"durationMinutes"`
	Price           float64            `json:"price"`
}

func FromDomain(entries []domain.CatalogEntry) *CatalogResponse {
	items := make([]CatalogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, CatalogItem{
			Kind:            e.Kind,
			Key:             e.Key,
			Title:           e.Title,
			DurationMinutes: e.DurationMinutes,
			Price:           e.Price,
		})
	}
	return &CatalogResponse{Items: items}
}
