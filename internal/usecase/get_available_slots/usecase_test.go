package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hmax24/beauty-salon/internal/domain"
	catalogService "github.com/hmax24/beauty-salon/internal/service/catalog"
	"github.com/hmax24/beauty-salon/pkg/logger"
	"github.com/hmax24/beauty-salon/pkg/types"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ResolveDuration(ctx context.Context, locale, key string) (int, error) {
	args := m.Called(ctx, locale, key)
	return args.Int(0), args.Error(1)
}

type mockSchedule struct {
	mock.Mock
}

func (m *mockSchedule) DefaultStaffID(ctx context.Context) (uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSchedule) GetWorkingHours(ctx context.Context, date time.Time, staffID uuid.UUID) (*domain.WorkingHours, error) {
	args := m.Called(ctx, date, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkingHours), args.Error(1)
}

type mockAppointments struct {
	mock.Mock
}

func (m *mockAppointments) ListBookedBlocks(ctx context.Context, staffID uuid.UUID, date time.Time) ([]domain.Block, error) {
	args := m.Called(ctx, staffID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Block), args.Error(1)
}

var (
	staffID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	monday  = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	locales = []string{"ua", "ru", "en", "nl", "de"}
	ts      = types.MustTimeString
)

func newUseCase() (*UseCase, *mockCatalog, *mockSchedule, *mockAppointments) {
	c, s, a := new(mockCatalog), new(mockSchedule), new(mockAppointments)
	return NewUseCase(c, s, a, locales, logger.NewNop()), c, s, a
}

func TestUseCase_Execute_AnnotatesAvailability(t *testing.T) {
	ctx := context.Background()
	uc, c, s, a := newUseCase()

	c.On("ResolveDuration", ctx, "en", "mani-pedi").Return(105, nil)
	s.On("DefaultStaffID", ctx).Return(staffID, nil)
	s.On("GetWorkingHours", ctx, monday, staffID).Return(&domain.WorkingHours{
		StaffID: staffID, Weekday: 1, OpenTime: ts("09:00"), CloseTime: ts("18:00"), SlotMinutes: 30, IsActive: true,
	}, nil)
	a.On("ListBookedBlocks", ctx, staffID, monday).Return([]domain.Block{
		{Start: ts("12:00"), End: ts("13:00")},
	}, nil)

	resp, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "mani-pedi"})
	require.NoError(t, err)

	assert.Equal(t, monday, resp.Date)
	assert.Equal(t, "mani-pedi", resp.CatalogKey)
	assert.Equal(t, 105, resp.DurationMinutes)
	require.NotNil(t, resp.SlotGranularityMinutes)
	assert.Equal(t, 30, *resp.SlotGranularityMinutes)
	require.NotNil(t, resp.WorkingHours)
	assert.Equal(t, "09:00", resp.WorkingHours.Start.String())
	assert.Equal(t, "18:00", resp.WorkingHours.End.String())

	require.Len(t, resp.Slots, 15)
	assert.Equal(t, "09:00", resp.Slots[0].Start.String())
	assert.Equal(t, "10:45", resp.Slots[0].End.String())

	availability := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		availability[slot.Start.String()] = slot.Available
	}
	assert.True(t, availability["10:00"], "10:00-11:45 ends before 12:00")
	assert.False(t, availability["10:30"], "10:30-12:15 overlaps 12:00-13:00")
	assert.False(t, availability["12:30"])
	assert.True(t, availability["13:00"], "starts exactly when the booking ends")
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	ctx := context.Background()
	uc, c, s, a := newUseCase()
	sunday := monday.AddDate(0, 0, 6)

	c.On("ResolveDuration", ctx, "ru", "manicure").Return(60, nil)
	s.On("DefaultStaffID", ctx).Return(staffID, nil)
	s.On("GetWorkingHours", ctx, sunday, staffID).Return(nil, nil)

	resp, err := uc.Execute(ctx, &Request{Locale: "ru", Date: "2025-03-16", Key: "manicure"})
	require.NoError(t, err)

	assert.Nil(t, resp.WorkingHours)
	assert.Nil(t, resp.SlotGranularityMinutes)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	a.AssertNotCalled(t, "ListBookedBlocks", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_DurationLongerThanDay(t *testing.T) {
	ctx := context.Background()
	uc, c, s, a := newUseCase()

	c.On("ResolveDuration", ctx, "en", "marathon").Return(600, nil)
	s.On("DefaultStaffID", ctx).Return(staffID, nil)
	s.On("GetWorkingHours", ctx, monday, staffID).Return(&domain.WorkingHours{
		OpenTime: ts("09:00"), CloseTime: ts("18:00"), SlotMinutes: 30,
	}, nil)

	resp, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "marathon"})
	require.NoError(t, err)
	assert.NotNil(t, resp.WorkingHours)
	assert.Empty(t, resp.Slots)
	a.AssertNotCalled(t, "ListBookedBlocks", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{name: "unsupported locale", req: Request{Locale: "fr", Date: "2025-03-10", Key: "manicure"}, field: "locale"},
		{name: "missing date", req: Request{Locale: "en", Key: "manicure"}, field: "date"},
		{name: "bad date format", req: Request{Locale: "en", Date: "10.03.2025", Key: "manicure"}, field: "date"},
		{name: "impossible date", req: Request{Locale: "en", Date: "2025-02-30", Key: "manicure"}, field: "date"},
		{name: "missing key", req: Request{Locale: "en", Date: "2025-03-10", Key: "  "}, field: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, c, s, a := newUseCase()

			_, err := uc.Execute(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)

			c.AssertNotCalled(t, "ResolveDuration", mock.Anything, mock.Anything, mock.Anything)
			s.AssertNotCalled(t, "DefaultStaffID", mock.Anything)
			a.AssertNotCalled(t, "ListBookedBlocks", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		uc, c, _, _ := newUseCase()
		c.On("ResolveDuration", ctx, "en", "nope").Return(0, catalogService.ErrNotFound)

		_, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "nope"})
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("invalid duration", func(t *testing.T) {
		uc, c, _, _ := newUseCase()
		c.On("ResolveDuration", ctx, "en", "broken").Return(0, catalogService.ErrInvalidDuration)

		_, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "broken"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store failure on booked blocks", func(t *testing.T) {
		uc, c, s, a := newUseCase()
		c.On("ResolveDuration", ctx, "en", "manicure").Return(60, nil)
		s.On("DefaultStaffID", ctx).Return(staffID, nil)
		s.On("GetWorkingHours", ctx, monday, staffID).Return(&domain.WorkingHours{
			OpenTime: ts("09:00"), CloseTime: ts("18:00"), SlotMinutes: 30,
		}, nil)
		a.On("ListBookedBlocks", ctx, staffID, monday).Return(nil, errors.New("timeout"))

		_, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "manicure"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("no staff", func(t *testing.T) {
		uc, c, s, _ := newUseCase()
		c.On("ResolveDuration", ctx, "en", "manicure").Return(60, nil)
		s.On("DefaultStaffID", ctx).Return(uuid.Nil, errors.New("schedule: no active staff configured"))

		_, err := uc.Execute(ctx, &Request{Locale: "en", Date: "2025-03-10", Key: "manicure"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
