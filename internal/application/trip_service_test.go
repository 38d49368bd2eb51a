package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	staticrepo "TripDine-App/internal/repository"
)

type failingTripsRepository struct{}

func (failingTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return nil, errors.New("connection refused")
}

func (failingTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return nil, errors.New("connection refused")
}

func tripServiceFixture() TripService {
	return NewTripService(staticrepo.NewStaticTripsRepository(model.TripCollections{
		Past: []model.Trip{
			{ID: "p1", City: "Seattle", Hotel: "Hotel Max", StartDate: "2025-06-02", EndDate: "2025-06-05",
				Coordinates: &model.Coordinates{Latitude: 47.6062, Longitude: -122.3321}},
			{ID: "p2", City: "Unknown", Hotel: "Nowhere Inn", StartDate: "2025-01-01", EndDate: "2025-01-02"},
		},
		Upcoming: []model.Trip{
			{ID: "u1", City: "New York", Hotel: "The Plaza", StartDate: "2026-11-09", EndDate: "2026-11-12",
				Coordinates: &model.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
		},
	}))
}

func TestTripService_GetTripOptions(t *testing.T) {
	groups, err := tripServiceFixture().GetTripOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Upcoming Trips", groups[0].Label)
	assert.Equal(t, "The Plaza (New York) — Nov 9–12, 2026", groups[0].Options[0].Label)
	assert.Len(t, groups[1].Options, 2)
}

func TestTripService_GetDefaultTrip(t *testing.T) {
	result, err := tripServiceFixture().GetDefaultTrip(context.Background(), time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, model.TripKindUpcoming, result.Kind)
	assert.Equal(t, "u1", result.Trip.ID)
	assert.Equal(t, "The Plaza • Nov 9–12, 2026", result.Context.Label)

	empty := NewTripService(staticrepo.NewStaticTripsRepository(model.TripCollections{}))
	result, err = empty.GetDefaultTrip(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTripService_GetSearchContext(t *testing.T) {
	svc := tripServiceFixture()

	sc, err := svc.GetSearchContext(context.Background(), model.TripKindPast, "p1")
	require.NoError(t, err)
	assert.Equal(t, model.OriginTripPast, sc.OriginKind)
	assert.Equal(t, model.LatLng{Lat: 47.6062, Lng: -122.3321}, sc.Coordinate)

	_, err = svc.GetSearchContext(context.Background(), model.TripKindUpcoming, "p1")
	assert.ErrorIs(t, err, repository.ErrTripNotFound)

	_, err = svc.GetSearchContext(context.Background(), model.TripKindPast, "p2")
	assert.ErrorIs(t, err, ErrTripWithoutLocation)
}

func TestTripService_RepositoryError(t *testing.T) {
	_, err := NewTripService(failingTripsRepository{}).GetTrips(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "過去の旅程の取得に失敗")
}
