package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	catalogRepo "github.com/hmax24/beauty-salon/internal/infra/storage/catalog"
)

// Service разрешает ключи каталога в длительность и собирает локализованный каталог.
// Длительность и цена офферов всегда пересчитываются из текущих услуг
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Resolve ищет ключ сначала среди услуг, затем среди офферов.
// Локаль влияет только на тексты, не на расчёт
func (s *Service) Resolve(ctx context.Context, locale, key string) (*Resolution, error) {
	// 1. Прямая услуга
	service, err := s.repo.GetServiceBySlug(ctx, key)
	switch {
	case err == nil:
		if service.DurationMinutes <= 0 {
			s.logger.Error("Resolve: service key=%s has duration=%d", key, service.DurationMinutes)
			return nil, fmt.Errorf("%w: service %s", ErrInvalidDuration, key)
		}
		id := service.ID
		return &Resolution{
			Kind:            domain.CatalogKindService,
			Key:             key,
			ServiceID:       &id,
			DurationMinutes: service.DurationMinutes,
		}, nil
	case !errors.Is(err, catalogRepo.ErrNotFound):
		s.logger.Error("Resolve: failed to get service key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Resolve - get service: %v", ErrInternal, err)
	}

	// 2. Оффер
	offer, err := s.repo.GetOfferBySlug(ctx, key)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			s.logger.Warn("Resolve: key=%s not found (locale=%s)", key, locale)
			return nil, ErrNotFound
		}
		s.logger.Error("Resolve: failed to get offer key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Resolve - get offer: %v", ErrInternal, err)
	}

	// 3. Услуги оффера по id, не по slug
	members, err := s.repo.GetServicesByIDs(ctx, offer.ServiceIDs)
	if err != nil {
		s.logger.Error("Resolve: failed to get services of offer key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Resolve - get offer services: %v", ErrInternal, err)
	}

	duration := offer.DurationMinutes(members)
	if duration <= 0 {
		s.logger.Error("Resolve: offer key=%s resolved to duration=%d", key, duration)
		return nil, fmt.Errorf("%w: offer %s", ErrInvalidDuration, key)
	}

	id := offer.ID
	return &Resolution{
		Kind:            domain.CatalogKindOffer,
		Key:             key,
		OfferID:         &id,
		DurationMinutes: duration,
	}, nil
}

// ResolveDuration возвращает длительность услуги или оффера в минутах
func (s *Service) ResolveDuration(ctx context.Context, locale, key string) (int, error) {
	res, err := s.Resolve(ctx, locale, key)
	if err != nil {
		return 0, err
	}
	return res.DurationMinutes, nil
}

// ListCatalog возвращает активные услуги, затем активные офферы, каждые по slug.
// Офферы с нулевой длительностью остаются в каталоге: записаться на них нельзя, но показать можно
func (s *Service) ListCatalog(ctx context.Context, locale string) ([]domain.CatalogEntry, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - list services: %v", ErrInternal, err)
	}

	offers, err := s.repo.ListOffers(ctx)
	if err != nil {
		s.logger.Error("ListCatalog: failed to list offers: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - list offers: %v", ErrInternal, err)
	}

	// Все услуги офферов одним запросом: в оффер может входить услуга, не попавшая в список выше
	memberIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, o := range offers {
		for _, id := range o.ServiceIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				memberIDs = append(memberIDs, id)
			}
		}
	}
	members, err := s.repo.GetServicesByIDs(ctx, memberIDs)
	if err != nil {
		s.logger.Error("ListCatalog: failed to get offer services: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - get offer services: %v", ErrInternal, err)
	}

	entries := make([]domain.CatalogEntry, 0, len(services)+len(offers))
	for _, svc := range services {
		entries = append(entries, domain.CatalogEntry{
			Kind:            domain.CatalogKindService,
			Key:             svc.Slug,
			Title:           svc.Title.Pick(locale),
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.BasePrice,
		})
	}
	for i := range offers {
		o := &offers[i]
		entries = append(entries, domain.CatalogEntry{
			Kind:            domain.CatalogKindOffer,
			Key:             o.Slug,
			Title:           o.Title.Pick(locale),
			DurationMinutes: o.DurationMinutes(members),
			Price:           o.FinalPrice(members),
		})
	}

	s.logger.Info("ListCatalog: locale=%s, services=%d, offers=%d", locale, len(services), len(offers))
	return entries, nil
}
