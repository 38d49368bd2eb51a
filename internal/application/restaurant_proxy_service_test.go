package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/repository"
)

type rawSearchProvider struct {
	body  []byte
	err   error
	calls int
}

func (p *rawSearchProvider) SearchRaw(ctx context.Context, params model.RestaurantSearchParams) ([]byte, error) {
	p.calls++
	return p.body, p.err
}

func (p *rawSearchProvider) Search(ctx context.Context, params model.RestaurantSearchParams) ([]model.Restaurant, error) {
	return nil, errors.New("not used")
}

func TestRestaurantProxyService_Search(t *testing.T) {
	provider := &rawSearchProvider{body: []byte(`{"businesses":[],"total":0}`)}
	cache := repository.NewSearchCacheRepository(time.Minute)
	svc := NewRestaurantProxyService(provider, cache, zap.NewNop())
	params := model.NewRestaurantSearchParams(37.7749, -122.4194)

	body, cached, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.JSONEq(t, `{"businesses":[],"total":0}`, string(body))

	body, cached, err = svc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.NotEmpty(t, body)
	assert.Equal(t, 1, provider.calls)

	t.Run("条件が違えば上流を呼ぶ", func(t *testing.T) {
		other := params
		other.Radius = 1000
		_, cached, err := svc.Search(context.Background(), other)
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, 2, provider.calls)
	})
}

func TestRestaurantProxyService_SearchError(t *testing.T) {
	provider := &rawSearchProvider{err: errors.New("boom")}
	cache := repository.NewSearchCacheRepository(time.Minute)
	svc := NewRestaurantProxyService(provider, cache, zap.NewNop())

	_, _, err := svc.Search(context.Background(), model.NewRestaurantSearchParams(1, 2))
	assert.ErrorIs(t, err, provider.err)
	assert.Equal(t, 0, cache.ItemCount(), "失敗はキャッシュしない")
}
