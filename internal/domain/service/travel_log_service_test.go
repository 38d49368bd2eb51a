package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

type stubTripsRepository struct {
	trips model.TripCollections
	err   error
}

func (r *stubTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return r.trips.Past, r.err
}

func (r *stubTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return r.trips.Upcoming, r.err
}

type stubRestaurantsRepository struct {
	restaurants []model.Restaurant
}

func (r *stubRestaurantsRepository) GetAll(ctx context.Context) ([]model.Restaurant, error) {
	return r.restaurants, nil
}

func (r *stubRestaurantsRepository) GetByIDs(ctx context.Context, ids []string) (map[string]model.Restaurant, error) {
	result := make(map[string]model.Restaurant)
	for _, id := range ids {
		for _, rest := range r.restaurants {
			if rest.ID == id {
				result[id] = rest
			}
		}
	}
	return result, nil
}

func TestBuildTravelLog(t *testing.T) {
	past := []model.Trip{
		{ID: "p1", City: "Austin", State: "TX", Hotel: "Hotel Van Zandt", StartDate: "2024-09-02", EndDate: "2024-09-05",
			RestaurantsVisited: []string{"r1", "missing"}},
		{ID: "p2", City: "Austin", State: "TX", Hotel: "The Driskill", StartDate: "2025-02-10", EndDate: "2025-02-12",
			RestaurantsVisited: []string{"r2"}},
		{ID: "p3", City: "Chicago", State: "IL", Hotel: "Hotel Van Zandt", StartDate: "2025-08-01", EndDate: "2025-08-03"},
	}
	restaurants := map[string]model.Restaurant{
		"r1": {ID: "r1", Name: "Franklin Barbecue", Rating: 4.5, Price: "$$"},
		"r2": {ID: "r2", Name: "Uchi", Rating: 4.5, Price: "$$$$"},
	}

	log := BuildTravelLog(past, restaurants)

	assert.Equal(t, model.TravelLogStats{TripCount: 3, CityCount: 2, HotelCount: 2, RestaurantCount: 3}, log.Stats)

	require.Len(t, log.Years, 2)
	assert.Equal(t, 2025, log.Years[0].Year)
	assert.Equal(t, 2024, log.Years[1].Year)

	require.Len(t, log.Years[0].Trips, 2)
	assert.Equal(t, "p3", log.Years[0].Trips[0].TripID)
	assert.Equal(t, "p2", log.Years[0].Trips[1].TripID)
	assert.Equal(t, "Feb 10–12, 2025", log.Years[0].Trips[1].DateRange)

	// 参照データに無いIDは読み飛ばす
	visited := log.Years[1].Trips[0].Restaurants
	require.Len(t, visited, 1)
	assert.Equal(t, "Franklin Barbecue", visited[0].Name)
}

func TestTravelLogService_Generate(t *testing.T) {
	trips := &stubTripsRepository{trips: model.TripCollections{Past: []model.Trip{
		{ID: "p1", City: "Austin", Hotel: "Hotel Van Zandt", StartDate: "2024-09-02", EndDate: "2024-09-05",
			RestaurantsVisited: []string{"r1"}},
	}}}
	restaurants := &stubRestaurantsRepository{restaurants: []model.Restaurant{{ID: "r1", Name: "Franklin Barbecue"}}}

	svc := NewTravelLogService(trips, restaurants)
	log, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, log.Stats.TripCount)
	assert.Equal(t, "Franklin Barbecue", log.Years[0].Trips[0].Restaurants[0].Name)

	trips.err = errors.New("boom")
	_, err = svc.Generate(context.Background())
	assert.Error(t, err)
}
