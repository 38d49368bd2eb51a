package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

func TestSimulateNearbyVenues(t *testing.T) {
	t.Run("登録済みの都市", func(t *testing.T) {
		trip := &model.Trip{ID: "u1", City: "Austin", Coordinates: &model.Coordinates{Latitude: 30.2606, Longitude: -97.7383}}
		venues := SimulateNearbyVenues(trip)
		require.Len(t, venues, 3)
		assert.Equal(t, "Franklin Barbecue", venues[0].Name)
		assert.Equal(t, "nearby-u1-0", venues[0].ID)
		p, ok := venues[0].Position()
		require.True(t, ok)
		assert.InDelta(t, 30.2646, p.Lat, 1e-9)
		assert.Contains(t, venues[0].Tags, SimulatedVenueTag)
		assert.Greater(t, venues[0].Distance, 0.0)
	})

	t.Run("未登録の都市は汎用テンプレート", func(t *testing.T) {
		trip := &model.Trip{ID: "x", City: "Boise", Coordinates: &model.Coordinates{Latitude: 43.615, Longitude: -116.2023}}
		venues := SimulateNearbyVenues(trip)
		require.Len(t, venues, len(genericVenueTemplates))
		assert.Equal(t, "Downtown Grill", venues[0].Name)
	})

	t.Run("座標が無い旅程", func(t *testing.T) {
		assert.Empty(t, SimulateNearbyVenues(&model.Trip{ID: "y"}))
	})
}
