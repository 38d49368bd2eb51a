package yelp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripDine-App/internal/domain/model"
)

func TestClient_Search(t *testing.T) {
	var gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/businesses/search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"businesses":[{"id":"b1","name":"Uchi","rating":4.5,"coordinates":{"latitude":30.25,"longitude":-97.76}}],"total":1}`))
	}))
	defer server.Close()

	client := NewClient("secret", server.URL, 5*time.Second)
	restaurants, err := client.Search(context.Background(), model.NewRestaurantSearchParams(30.26, -97.74))
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Uchi", restaurants[0].Name)
	require.NotNil(t, restaurants[0].Coordinates.Latitude)
	assert.Equal(t, 30.25, *restaurants[0].Coordinates.Latitude)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, gotQuery, "latitude=30.26")
	assert.Contains(t, gotQuery, "radius=8000")
	assert.Contains(t, gotQuery, "categories=restaurants")
}

func TestClient_Search_NullCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"businesses":[{"id":"b1","name":"Food Truck","coordinates":{"latitude":null,"longitude":null}}],"total":1}`))
	}))
	defer server.Close()

	client := NewClient("secret", server.URL, 5*time.Second)
	restaurants, err := client.Search(context.Background(), model.NewRestaurantSearchParams(30.26, -97.74))
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Nil(t, restaurants[0].Coordinates.Latitude)
	assert.False(t, restaurants[0].HasLocation(), "null の座標を (0,0) として扱わない")
}

func TestClient_SearchRaw_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"TOO_MANY_REQUESTS_PER_SECOND"}}`))
	}))
	defer server.Close()

	client := NewClient("secret", server.URL, 5*time.Second)
	_, err := client.SearchRaw(context.Background(), model.NewRestaurantSearchParams(1, 2))

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
}

func TestClient_MissingAPIKey(t *testing.T) {
	client := NewClient("", "", time.Second)
	_, err := client.Search(context.Background(), model.NewRestaurantSearchParams(1, 2))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
