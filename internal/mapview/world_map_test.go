package mapview

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

var worldCenter = model.LatLng{Lat: 20, Lng: 0}

func sampleTripCollections() model.TripCollections {
	return model.TripCollections{
		Past: []model.Trip{
			{ID: "p1", City: "Austin", State: "TX", Hotel: "The Driskill", StartDate: "2025-03-10", EndDate: "2025-03-12",
				Coordinates: &model.Coordinates{Latitude: 30.2672, Longitude: -97.7431}},
			{ID: "p2", City: "Nowhere", State: "NA"},
		},
		Upcoming: []model.Trip{
			{ID: "p1", City: "Portland", State: "OR", Hotel: "Hotel Lucia", StartDate: "2026-11-01", EndDate: "2026-11-03",
				Coordinates: &model.Coordinates{Latitude: 45.5152, Longitude: -122.6784}},
		},
	}
}

func newWorldMapFixture(t *testing.T) (*WorldMap, *MemorySurface) {
	t.Helper()
	factory := NewMemorySurfaceFactory()
	world := NewWorldMap(WorldMapOptions{Globe: Available(factory), Flat: Unavailable()})
	require.True(t, world.Init("world-map", worldCenter, 2))
	surface, ok := factory.Surface("world-map")
	require.True(t, ok)
	return world, surface
}

func TestWorldMap_InitProjection(t *testing.T) {
	t.Run("地球儀", func(t *testing.T) {
		world, _ := newWorldMapFixture(t)
		assert.Equal(t, ProjectionGlobe, world.Projection())
	})

	t.Run("地球儀が無い場合は2D地図", func(t *testing.T) {
		world := NewWorldMap(WorldMapOptions{Globe: Unavailable(), Flat: Available(NewMemorySurfaceFactory())})
		require.True(t, world.Init("world-map", worldCenter, 2))
		assert.Equal(t, ProjectionFlat, world.Projection())
	})

	t.Run("地球儀の作成に失敗した場合も2D地図", func(t *testing.T) {
		broken := SurfaceFactoryFunc(func(string) (Surface, error) { return nil, errors.New("webgl unavailable") })
		world := NewWorldMap(WorldMapOptions{Globe: Available(broken), Flat: Available(NewMemorySurfaceFactory())})
		require.True(t, world.Init("world-map", worldCenter, 2))
		assert.Equal(t, ProjectionFlat, world.Projection())
	})

	t.Run("どちらも無い場合は無効", func(t *testing.T) {
		world := NewWorldMap(WorldMapOptions{Globe: Unavailable(), Flat: Unavailable()})
		assert.False(t, world.Init("world-map", worldCenter, 2))
		assert.False(t, world.Enabled())
		assert.Equal(t, ProjectionNone, world.Projection())
		assert.Equal(t, 0, world.ShowTrips(sampleTripCollections()))
		assert.False(t, world.FocusTrip(model.TripKindPast, sampleTripCollections().Past[0]))
	})
}

func TestWorldMap_ShowTrips(t *testing.T) {
	world, surface := newWorldMapFixture(t)

	assert.Equal(t, 2, world.ShowTrips(sampleTripCollections()), "座標の無い旅程は除外")

	past := surface.MarkersOfKind(MarkerPastTrip)
	upcoming := surface.MarkersOfKind(MarkerUpcomingTrip)
	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, PastTripColor, surface.Markers()[past[0]].Color)
	assert.Equal(t, UpcomingTripColor, surface.Markers()[upcoming[0]].Color)
	assert.NotEqual(t, PastTripColor, UpcomingTripColor)

	assert.Equal(t, 2, world.ShowTrips(sampleTripCollections()))
	assert.Len(t, surface.Markers(), 2)
}

func TestWorldMap_TripClick(t *testing.T) {
	world, surface := newWorldMapFixture(t)
	world.ShowTrips(sampleTripCollections())

	var clicked []string
	world.OnTripClicked(func(kind model.TripKind, tripID string) {
		clicked = append(clicked, TripMarkerKey(kind, tripID))
	})

	h, ok := surface.HandleFor(TripMarkerKey(model.TripKindUpcoming, "p1"))
	require.True(t, ok)
	require.True(t, surface.ClickMarker(h))

	assert.Equal(t, []string{"upcoming:p1"}, clicked)
	assert.Equal(t, h, surface.OpenPopupHandle())
}

func TestWorldMap_FocusTrip(t *testing.T) {
	world, surface := newWorldMapFixture(t)
	trips := sampleTripCollections()
	world.ShowTrips(trips)

	require.True(t, world.FocusTrip(model.TripKindPast, trips.Past[0]))
	assert.Equal(t, 0, world.NearbyCount(), "移動が終わるまで表示しない")
	assert.Equal(t, 1, surface.PendingFlights())

	surface.CompleteFlights()
	assert.Equal(t, model.LatLng{Lat: 30.2672, Lng: -97.7431}, surface.Center())
	assert.Equal(t, DefaultFocusZoom, surface.Zoom())
	assert.Equal(t, 3, world.NearbyCount())
	assert.Equal(t, 2, world.MarkerCount(), "旅程マーカーは残る")

	t.Run("座標の無い旅程", func(t *testing.T) {
		assert.False(t, world.FocusTrip(model.TripKindPast, trips.Past[1]))
	})

	t.Run("古い移動の結果は表示しない", func(t *testing.T) {
		require.True(t, world.FocusTrip(model.TripKindPast, trips.Past[0]))
		require.True(t, world.FocusTrip(model.TripKindUpcoming, trips.Upcoming[0]))
		assert.Equal(t, 2, surface.CompleteFlights())

		nearby := surface.MarkersOfKind(MarkerNearbyVenue)
		assert.Len(t, nearby, 4)
		for _, h := range nearby {
			spec := surface.Markers()[h]
			assert.True(t, strings.HasPrefix(spec.Key, "nearby-p1-"))
			assert.InDelta(t, 45.5152, spec.Position.Lat, 0.01)
		}
	})
}
