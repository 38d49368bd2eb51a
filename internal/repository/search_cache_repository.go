package repository

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SearchCacheRepository 上流の検索レスポンスをTTL付きで保持するメモリキャッシュ
type SearchCacheRepository struct {
	cache *cache.Cache
}

// NewSearchCacheRepository ttl で期限切れになり、ttl*2 ごとに掃除するキャッシュを作成
func NewSearchCacheRepository(ttl time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *SearchCacheRepository) Get(key string) ([]byte, bool) {
	if x, found := r.cache.Get(key); found {
		return x.([]byte), true
	}
	return nil, false
}

func (r *SearchCacheRepository) Set(key string, body []byte) {
	r.cache.Set(key, body, cache.DefaultExpiration)
}

func (r *SearchCacheRepository) ItemCount() int {
	return r.cache.ItemCount()
}
