package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/config"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/mapview"
	"TripDine-App/internal/platform"
	"TripDine-App/internal/repository"
)

func TestConfigFromView(t *testing.T) {
	cfg := ConfigFromView(config.ViewConfig{})
	assert.Equal(t, DefaultConfig(), cfg)

	cfg = ConfigFromView(config.ViewConfig{TripMarkerOpensLocal: true, ResizeDelay: 40 * time.Millisecond})
	assert.True(t, cfg.TripMarkerOpensLocal)
	assert.Equal(t, 40*time.Millisecond, cfg.ResizeDelay)
	assert.Equal(t, DefaultConfig().LocalCenter, cfg.LocalCenter)
}

func newOrchestratorFromEnv(t *testing.T) (*ViewOrchestrator, *platform.ManualScheduler, *fakeDataSource) {
	t.Helper()
	factory := mapview.NewMemorySurfaceFactory()
	scheduler := platform.NewManualScheduler()
	dataSource := &fakeDataSource{}

	o := NewFromConfig(config.Load().View, LayerOptions{
		Local: mapview.Available(factory),
		Globe: mapview.Available(factory),
		Flat:  mapview.Unavailable(),
	}, Dependencies{
		Views:       newFakeViews(model.AllViews()...),
		Sidebar:     &fakeSidebar{},
		Trips:       repository.NewStaticTripsRepository(sampleTrips()),
		Restaurants: dataSource,
		TravelLog:   &stubTravelLogService{},
		Scheduler:   scheduler,
		Now:         func() time.Time { return today },
	})
	o.Init(context.Background())
	runAsync(scheduler)
	return o, scheduler, dataSource
}

func TestNewFromConfig(t *testing.T) {
	t.Run("環境変数の表示設定が反映される", func(t *testing.T) {
		t.Setenv("TRIP_MARKER_OPENS_LOCAL", "true")
		t.Setenv("RESIZE_DELAY_MS", "250")
		t.Setenv("GEOLOCATION_TIMEOUT_SECONDS", "3")

		o, scheduler, dataSource := newOrchestratorFromEnv(t)

		local, ok := o.local.(*mapview.LocalMap)
		require.True(t, ok)
		assert.Equal(t, 3*time.Second, local.GeolocationTimeout())

		o.OnTripMarkerClicked(model.TripKindUpcoming, "u2")
		runAsync(scheduler)

		assert.Equal(t, model.ViewLocal, o.View())
		require.Len(t, dataSource.calls, 2)
		assert.Equal(t, model.LatLng{Lat: 41.8781, Lng: -87.6298}, dataSource.calls[1])

		pending := scheduler.Pending()
		require.Len(t, pending, 1)
		assert.True(t, pending[0].Deferred)
		assert.Equal(t, 250*time.Millisecond, pending[0].Delay)
	})

	t.Run("未設定なら既定のポリシー", func(t *testing.T) {
		t.Setenv("TRIP_MARKER_OPENS_LOCAL", "")
		t.Setenv("RESIZE_DELAY_MS", "")
		t.Setenv("GEOLOCATION_TIMEOUT_SECONDS", "")

		o, _, dataSource := newOrchestratorFromEnv(t)

		local, ok := o.local.(*mapview.LocalMap)
		require.True(t, ok)
		assert.Equal(t, mapview.DefaultGeolocationTimeout, local.GeolocationTimeout())

		o.OnTripMarkerClicked(model.TripKindUpcoming, "u2")
		assert.Equal(t, model.ViewWorld, o.View())
		assert.Len(t, dataSource.calls, 1)
	})
}
