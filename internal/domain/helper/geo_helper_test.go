package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

func TestDistanceMeters(t *testing.T) {
	// サンフランシスコ市内の約1.4km
	d := DistanceMeters(37.7749, -122.4194, 37.7849, -122.4094)
	assert.InDelta(t, 1418, d, 10)

	assert.Zero(t, DistanceMeters(35.0, 135.7, 35.0, 135.7))
	assert.InDelta(t, d, DistanceMeters(37.7849, -122.4094, 37.7749, -122.4194), 1e-6)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		want   string
	}{
		{name: "短距離はフィート", meters: 150, want: "492 ft"},
		{name: "ゼロ", meters: 0, want: "0 ft"},
		{name: "0.1マイル直前", meters: 160, want: "525 ft"},
		{name: "0.1マイル以上はマイル", meters: 161, want: "0.1 mi"},
		{name: "2km", meters: 2000, want: "1.2 mi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.meters))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{name: "同年同月", start: "2026-03-15", end: "2026-03-19", want: "Mar 15–19, 2026"},
		{name: "同年別月", start: "2026-03-30", end: "2026-04-02", want: "Mar 30 – Apr 2, 2026"},
		{name: "年またぎ", start: "2026-12-30", end: "2027-01-02", want: "Dec 30, 2026 – Jan 2, 2027"},
		{name: "解析できない日付", start: "not-a-date", end: "2026-01-01", want: "not-a-date – 2026-01-01"},
		{name: "終了日が空", start: "2026-01-01", end: "", want: "2026-01-01 – "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end))
		})
	}
}

func TestBoundsWithPadding(t *testing.T) {
	_, ok := BoundsWithPadding(nil, 0.1)
	assert.False(t, ok)

	bound, ok := BoundsWithPadding([]model.LatLng{
		{Lat: 10, Lng: 20},
		{Lat: 12, Lng: 30},
		{Lat: 11, Lng: 25},
	}, 0.1)
	require.True(t, ok)
	assert.InDelta(t, 19, bound.Min.Lon(), 1e-9)
	assert.InDelta(t, 31, bound.Max.Lon(), 1e-9)
	assert.InDelta(t, 9.8, bound.Min.Lat(), 1e-9)
	assert.InDelta(t, 12.2, bound.Max.Lat(), 1e-9)
}

func TestAnnotateDistances(t *testing.T) {
	origin := model.LatLng{Lat: 37.7749, Lng: -122.4194}
	input := []model.Restaurant{
		{ID: "a", Coordinates: model.NewRestaurantCoordinates(37.7849, -122.4094), Distance: 99999},
	}

	got := AnnotateDistances(input, origin)
	require.Len(t, got, 1)
	assert.InDelta(t, 1418, got[0].Distance, 10)
	// 元のスライスは変更しない
	assert.Equal(t, float64(99999), input[0].Distance)

	t.Run("座標の無いレストランは除外する", func(t *testing.T) {
		lat := 37.78
		withNull := append(input, model.Restaurant{ID: "null", Coordinates: model.RestaurantCoordinates{Latitude: &lat}})
		got := AnnotateDistances(withNull, origin)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})
}
