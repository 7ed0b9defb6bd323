package catalog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	serviceSelect = "SELECT id, slug, title, description, duration_minutes, base_price, is_active FROM services"
	offerSelect   = "SELECT id, slug, title, description, discount_percent, time_discount_minutes, is_active FROM offers"
	membersSelect = "SELECT offer_id, service_id FROM offer_services"

	membersOrder = " ORDER BY offer_id, sort_order ASC NULLS LAST, service_id"
)

var (
	manicureID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	pedicureID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	maniPediID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	spaDuoID   = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows(serviceColumns)
}

func offerRows() *sqlmock.Rows {
	return sqlmock.NewRows(offerColumns)
}

// значения в том виде, в каком их отдаёт lib/pq: jsonb и numeric как []byte
func addService(rows *sqlmock.Rows, id uuid.UUID, slug, title string, duration int64, price string) *sqlmock.Rows {
	return rows.AddRow(id.String(), slug, []byte(title), []byte(`{}`), duration, []byte(price), true)
}

func TestRepository_GetServiceBySlug(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(serviceSelect+" WHERE is_active = $1 AND slug = $2 LIMIT 1")).
		WithArgs(true, "manicure").
		WillReturnRows(addService(serviceRows(), manicureID, "manicure", `{"ru":"Маникюр","en":"Manicure"}`, 60, "35.00"))

	service, err := repo.GetServiceBySlug(context.Background(), "manicure")
	require.NoError(t, err)
	assert.Equal(t, manicureID, service.ID)
	assert.Equal(t, 60, service.DurationMinutes)
	assert.Equal(t, 35.0, service.BasePrice)
	assert.Equal(t, "Manicure", service.Title.Pick("de"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetServiceBySlug_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(serviceSelect)).WillReturnRows(serviceRows())

		_, err := repo.GetServiceBySlug(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(serviceSelect)).WillReturnError(sql.ErrConnDone)

		_, err := repo.GetServiceBySlug(context.Background(), "manicure")
		assert.ErrorIs(t, err, ErrScanRow)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_GetServicesByIDs_KeepsRequestedOrder(t *testing.T) {
	repo, mock := newMockRepository(t)
	missing := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")

	mock.ExpectQuery(regexp.QuoteMeta(serviceSelect+" WHERE id IN ($1,$2,$3) AND is_active = $4")).
		WithArgs(pedicureID.String(), missing.String(), manicureID.String(), true).
		WillReturnRows(addService(
			addService(serviceRows(), manicureID, "manicure", `{"en":"Manicure"}`, 60, "35.00"),
			pedicureID, "pedicure", `{"en":"Pedicure"}`, 45, "40.00"))

	services, err := repo.GetServicesByIDs(context.Background(), []uuid.UUID{pedicureID, missing, manicureID})
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, pedicureID, services[0].ID)
	assert.Equal(t, manicureID, services[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetServicesByIDs_EmptyDoesNotQuery(t *testing.T) {
	repo, mock := newMockRepository(t)

	services, err := repo.GetServicesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListServices(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(serviceSelect+" WHERE is_active = $1 ORDER BY slug ASC")).
		WithArgs(true).
		WillReturnRows(addService(serviceRows(), manicureID, "manicure", `{"en":"Manicure"}`, 60, "35.00"))

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "manicure", services[0].Slug)

	mock.ExpectQuery(regexp.QuoteMeta(serviceSelect)).WillReturnError(sql.ErrConnDone)
	_, err = repo.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOfferBySlug(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(offerSelect+" WHERE is_active = $1 AND slug = $2 LIMIT 1")).
		WithArgs(true, "mani-pedi").
		WillReturnRows(offerRows().
			AddRow(maniPediID.String(), "mani-pedi", []byte(`{"en":"Mani + Pedi"}`), []byte(`{}`), []byte("10.00"), int64(15), true))
	mock.ExpectQuery(regexp.QuoteMeta(membersSelect+" WHERE offer_id IN ($1)"+membersOrder)).
		WithArgs(maniPediID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"offer_id", "service_id"}).
			AddRow(maniPediID.String(), pedicureID.String()).
			AddRow(maniPediID.String(), manicureID.String()))

	offer, err := repo.GetOfferBySlug(context.Background(), "mani-pedi")
	require.NoError(t, err)
	assert.Equal(t, maniPediID, offer.ID)
	assert.Equal(t, 10.0, offer.DiscountPercent)
	require.NotNil(t, offer.TimeDiscountMinutes)
	assert.Equal(t, 15, *offer.TimeDiscountMinutes)
	assert.Equal(t, []uuid.UUID{pedicureID, manicureID}, offer.ServiceIDs, "member order comes from sort_order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOfferBySlug_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(offerSelect)).WillReturnRows(offerRows())

		_, err := repo.GetOfferBySlug(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet(), "members are not queried")
	})

	t.Run("members query fails", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(offerSelect)).
			WillReturnRows(offerRows().
				AddRow(maniPediID.String(), "mani-pedi", []byte(`{}`), []byte(`{}`), []byte("0"), nil, true))
		mock.ExpectQuery(regexp.QuoteMeta(membersSelect)).WillReturnError(sql.ErrConnDone)

		_, err := repo.GetOfferBySlug(context.Background(), "mani-pedi")
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_ListOffers(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(offerSelect+" WHERE is_active = $1 ORDER BY slug ASC")).
		WithArgs(true).
		WillReturnRows(offerRows().
			AddRow(maniPediID.String(), "mani-pedi", []byte(`{}`), []byte(`{}`), []byte("10.00"), nil, true).
			AddRow(spaDuoID.String(), "spa-duo", []byte(`{}`), []byte(`{}`), []byte("0"), nil, true))
	mock.ExpectQuery(regexp.QuoteMeta(membersSelect+" WHERE offer_id IN ($1,$2)"+membersOrder)).
		WithArgs(maniPediID.String(), spaDuoID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"offer_id", "service_id"}).
			AddRow(maniPediID.String(), manicureID.String()).
			AddRow(maniPediID.String(), pedicureID.String()))

	offers, err := repo.ListOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, []uuid.UUID{manicureID, pedicureID}, offers[0].ServiceIDs)
	assert.Nil(t, offers[0].TimeDiscountMinutes)
	assert.Empty(t, offers[1].ServiceIDs, "offer without members")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOffers_EmptySkipsMembers(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(offerSelect)).WillReturnRows(offerRows())

	offers, err := repo.ListOffers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUUIDStrings(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []string{a.String(), b.String()}, uuidStrings([]uuid.UUID{a, b}))
	assert.Empty(t, uuidStrings(nil))
}
