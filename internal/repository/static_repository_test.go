package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

func TestSampleTripsRepository(t *testing.T) {
	repo, err := NewSampleTripsRepository()
	require.NoError(t, err)

	past, err := repo.GetPastTrips(context.Background())
	require.NoError(t, err)
	upcoming, err := repo.GetUpcomingTrips(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, past)
	assert.NotEmpty(t, upcoming)
	for _, trip := range past {
		assert.NotEmpty(t, trip.RestaurantsVisited, trip.ID)
		_, ok := trip.Location()
		assert.True(t, ok, trip.ID)
	}
}

func TestSampleRestaurantsRepository(t *testing.T) {
	repo, err := NewSampleRestaurantsRepository()
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	found, err := repo.GetByIDs(context.Background(), []string{"rest-sf-1", "does-not-exist"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Tadich Grill", found["rest-sf-1"].Name)
}

func TestTripRow_ToTrip(t *testing.T) {
	row := TripRow{
		ID:                 "p1",
		City:               "Austin",
		StartDate:          "2025-11-03",
		EndDate:            "2025-11-06",
		Hotel:              "Hotel Van Zandt",
		RestaurantsVisited: []byte(`["r1","r2"]`),
	}

	trip, err := row.ToTrip()
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, trip.RestaurantsVisited)
	assert.Nil(t, trip.Coordinates)

	row.RestaurantsVisited = []byte(`{broken`)
	_, err = row.ToTrip()
	assert.Error(t, err)
}

func TestTripDB_ToTrip(t *testing.T) {
	lat, lng := 30.26, -97.74
	trip := (&TripDB{ID: "u1", Latitude: &lat, Longitude: &lng}).ToTrip()
	require.NotNil(t, trip.Coordinates)
	assert.Equal(t, model.Coordinates{Latitude: lat, Longitude: lng}, *trip.Coordinates)

	assert.Nil(t, (&TripDB{ID: "u2", Latitude: &lat}).ToTrip().Coordinates)
}

func TestSearchCacheRepository(t *testing.T) {
	c := NewSearchCacheRepository(50 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", []byte(`{"businesses":[]}`))
	body, ok := c.Get("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"businesses":[]}`, string(body))

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
