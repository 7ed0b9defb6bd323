package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/psqlbuilder"
)

var (
	serviceColumns = []string{"id", "slug", "title", "description", "duration_minutes", "base_price", "is_active"}
	offerColumns   = []string{"id", "slug", "title", "description", "discount_percent", "time_discount_minutes", "is_active"}
)

// Repository читает справочник услуг и офферов. Только активные записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceBySlug возвращает активную услугу по slug
func (r *Repository) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"slug": slug, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceBySlug - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: GetServiceBySlug - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetServicesByIDs возвращает активные услуги по списку id в порядке ids.
// Неактивные и отсутствующие id пропускаются
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error) {
	if len(ids) == 0 {
		return []domain.Service{}, nil
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": uuidStrings(ids), "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	found, err := r.queryServices(ctx, "GetServicesByIDs", query, args)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	result := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListServices возвращает все активные услуги, отсортированные по slug
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryServices(ctx, "ListServices", query, args)
}

// GetOfferBySlug возвращает активный оффер со списком услуг в порядке sort_order
func (r *Repository) GetOfferBySlug(ctx context.Context, slug string) (*domain.Offer, error) {
	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"slug": slug, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOfferBySlug - build select query: %v", ErrBuildQuery, err)
	}

	offer, err := scanOffer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: GetOfferBySlug - scan offer: %v", ErrScanRow, err)
	}

	members, err := r.getOfferMembers(ctx, []uuid.UUID{offer.ID})
	if err != nil {
		return nil, err
	}
	offer.ServiceIDs = members[offer.ID]

	return offer, nil
}

// ListOffers возвращает все активные офферы, отсортированные по slug
func (r *Repository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOffers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOffers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOffers - scan offer: %v", ErrScanRow, err)
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOffers - rows error: %v", ErrScanRow, err)
	}

	if len(offers) == 0 {
		return offers, nil
	}

	ids := make([]uuid.UUID, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	members, err := r.getOfferMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].ServiceIDs = members[offers[i].ID]
	}

	return offers, nil
}

// getOfferMembers возвращает id услуг для каждого оффера в порядке sort_order
func (r *Repository) getOfferMembers(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	query, args, err := psqlbuilder.Select("offer_id", "service_id").
		From("offer_services").
		Where(squirrel.Eq{"offer_id": uuidStrings(offerIDs)}).
		OrderBy("offer_id", "sort_order ASC NULLS LAST", "service_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOfferMembers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOfferMembers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]uuid.UUID, len(offerIDs))
	for rows.Next() {
		var offerID, serviceID uuid.UUID
		if err := rows.Scan(&offerID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: getOfferMembers - scan link: %v", ErrScanRow, err)
		}
		result[offerID] = append(result[offerID], serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getOfferMembers - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) queryServices(ctx context.Context, op, query string, args []interface{}) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
		}
		services = append(services, *service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return services, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row scanner) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(
		&s.ID,
		&s.Slug,
		&s.Title,
		&s.Description,
		&s.DurationMinutes,
		&s.BasePrice,
		&s.IsActive,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanOffer(row scanner) (*domain.Offer, error) {
	var (
		o            domain.Offer
		timeDiscount sql.NullInt64
	)
	if err := row.Scan(
		&o.ID,
		&o.Slug,
		&o.Title,
		&o.Description,
		&o.DiscountPercent,
		&timeDiscount,
		&o.IsActive,
	); err != nil {
		return nil, err
	}
	if timeDiscount.Valid {
		v := int(timeDiscount.Int64)
		o.TimeDiscountMinutes = &v
	}
	return &o, nil
}

// uuidStrings аргументы IN строками, как и одиночные id в остальных запросах
func uuidStrings(ids []uuid.UUID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}
