package get_catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hmax24/beauty-salon/internal/domain"
	"github.com/hmax24/beauty-salon/pkg/logger"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListCatalog(ctx context.Context, locale string) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func newHandler(svc CatalogService) *Handler {
	return NewHandler(svc, "en", []string{"ua", "ru", "en", "nl", "de"}, logger.NewNop())
}

func TestHandle_DefaultLocale(t *testing.T) {
	svc := new(mockCatalog)
	svc.On("ListCatalog", mock.Anything, "en").Return([]domain.CatalogEntry{
		{Kind: domain.CatalogKindService, Key: "manicure", Title: "Manicure", DurationMinutes: 60, Price: 35},
		{Kind: domain.CatalogKindOffer, Key: "mani-pedi", Title: "Mani + Pedi", DurationMinutes: 105, Price: 67.5},
	}, nil)

	rec := httptest.NewRecorder()
	newHandler(svc).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items": [
		{"kind": "service", "key": "manicure", "title": "Manicure", "durationMinutes": 60, "price": 35},
		{"kind": "offer", "key": "mani-pedi", "title": "Mani + Pedi", "durationMinutes": 105, "price": 67.5}
	]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_EmptyCatalog(t *testing.T) {
	svc := new(mockCatalog)
	svc.On("ListCatalog", mock.Anything, "nl").Return([]domain.CatalogEntry{}, nil)

	rec := httptest.NewRecorder()
	newHandler(svc).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?locale=nl", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items": []}`, rec.Body.String())
}

func TestHandle_UnsupportedLocale(t *testing.T) {
	svc := new(mockCatalog)

	rec := httptest.NewRecorder()
	newHandler(svc).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?locale=fr", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": {"kind": "validation", "field": "locale", "message": "unsupported locale"}}`, rec.Body.String())
	svc.AssertNotCalled(t, "ListCatalog", mock.Anything, mock.Anything)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := new(mockCatalog)
	svc.On("ListCatalog", mock.Anything, "de").Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	newHandler(svc).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?locale=de", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
