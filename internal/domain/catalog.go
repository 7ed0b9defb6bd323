package domain

// CatalogKind distinguishes services from bundles in the public catalog
type CatalogKind string

const (
	CatalogKindService CatalogKind = "service"
	CatalogKindOffer   CatalogKind = "offer"
)

// CatalogEntry is a localized catalog item
type CatalogEntry struct {
	Kind            CatalogKind
	Key             string
	Title           string
	DurationMinutes int
	Price           float64
}
