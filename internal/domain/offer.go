package domain

import (
	"math"

	"github.com/google/uuid"
)

// Offer is a discounted bundle of services. Duration and price are derived
// from the live member services and are never stored
type Offer struct {
	ID                  uuid.UUID
	Slug                string
	Title               LocalizedText
	Description         LocalizedText
	ServiceIDs          []uuid.UUID // ordered by offer_services.sort_order
	DiscountPercent     float64     // 0..100
	TimeDiscountMinutes *int
	IsActive            bool
}

// members keeps only the services referenced by the offer
func (o *Offer) members(services []Service) []Service {
	ids := make(map[uuid.UUID]struct{}, len(o.ServiceIDs))
	for _, id := range o.ServiceIDs {
		ids[id] = struct{}{}
	}

	result := make([]Service, 0, len(services))
	for _, s := range services {
		if _, ok := ids[s.ID]; ok {
			result = append(result, s)
		}
	}
	return result
}

// DurationMinutes sum of member durations minus the time discount, floored at 0
func (o *Offer) DurationMinutes(services []Service) int {
	total := 0
	for _, s := range o.members(services) {
		total += s.DurationMinutes
	}
	if o.TimeDiscountMinutes != nil {
		total -= *o.TimeDiscountMinutes
	}
	if total < 0 {
		return 0
	}
	return total
}

// BasePrice sum of member prices before discount
func (o *Offer) BasePrice(services []Service) float64 {
	total := 0.0
	for _, s := range o.members(services) {
		total += s.BasePrice
	}
	return total
}

// FinalPrice base price with the percentage discount, rounded to 2 decimals
func (o *Offer) FinalPrice(services []Service) float64 {
	base := o.BasePrice(services)
	discounted := base - base*o.DiscountPercent/100
	return math.Round(discounted*100) / 100
}
