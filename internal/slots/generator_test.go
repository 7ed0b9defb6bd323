package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmax24/beauty-salon/pkg/types"
)

var ts = types.MustTimeString

func TestGenerate_LongServiceOnHalfHourGrid(t *testing.T) {
	got := Generate(ts("09:00"), ts("18:00"), 30, 105)

	require.NotEmpty(t, got)
	assert.Equal(t, "09:00", got[0].Start.String())
	assert.Equal(t, "10:45", got[0].End.String())

	// последний допустимый старт 16:15 (16:15+105 = 18:00), на сетке от 09:00 это 16:00
	last := got[len(got)-1]
	assert.Equal(t, "16:00", last.Start.String())
	assert.Equal(t, "17:45", last.End.String())
	assert.Len(t, got, 15)

	for _, start := range []string{"16:30", "16:45"} {
		_, found := Find(got, ts(start))
		assert.False(t, found, "%s would end after 18:00", start)
	}
}

func TestGenerate_LastStartExactlyAtBoundary(t *testing.T) {
	got := Generate(ts("09:00"), ts("18:00"), 15, 105)

	last := got[len(got)-1]
	assert.Equal(t, "16:15", last.Start.String())
	assert.Equal(t, "18:00", last.End.String())
}

func TestGenerate_Properties(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
		granularity int
		duration    int
	}{
		{name: "half hour grid", open: "09:00", close: "18:00", granularity: 30, duration: 60},
		{name: "quarter grid long service", open: "10:00", close: "19:30", granularity: 15, duration: 135},
		{name: "duration equals window", open: "09:00", close: "10:00", granularity: 30, duration: 60},
		{name: "step not dividing window", open: "08:10", close: "12:00", granularity: 25, duration: 40},
		{name: "until midnight", open: "20:00", close: "24:00", granularity: 60, duration: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close := ts(tt.open), ts(tt.close)
			got := Generate(open, close, tt.granularity, tt.duration)
			require.NotEmpty(t, got)

			assert.True(t, got[0].Start.Equal(open), "first start equals open time")
			for i, s := range got {
				assert.False(t, s.End.IsAfter(close), "slot %s-%s overruns close", s.Start, s.End)
				assert.Equal(t, tt.duration, s.End.Sub(s.Start))
				if i > 0 {
					assert.Equal(t, tt.granularity, s.Start.Sub(got[i-1].Start))
				}
			}

			// следующий шаг сетки уже не помещается
			assert.Greater(t, got[len(got)-1].Start.Minutes()+tt.granularity+tt.duration, close.Minutes())

			assert.Equal(t, got, Generate(open, close, tt.granularity, tt.duration), "idempotent")
		})
	}
}

func TestGenerate_Empty(t *testing.T) {
	tests := []struct {
		name        string
		open, close types.TimeString
		granularity int
		duration    int
	}{
		{name: "duration longer than window", open: ts("09:00"), close: ts("10:00"), granularity: 30, duration: 61},
		{name: "close before open", open: ts("18:00"), close: ts("09:00"), granularity: 30, duration: 30},
		{name: "zero granularity", open: ts("09:00"), close: ts("18:00"), granularity: 0, duration: 30},
		{name: "negative duration", open: ts("09:00"), close: ts("18:00"), granularity: 30, duration: -5},
		{name: "unset open", open: types.TimeString{}, close: ts("18:00"), granularity: 30, duration: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.open, tt.close, tt.granularity, tt.duration)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}
