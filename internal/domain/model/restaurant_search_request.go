package model

import (
	"fmt"
	"strings"
)

const (
	DefaultSearchRadiusMeters = 8000
	MaxSearchRadiusMeters     = 40000
	DefaultSearchLimit        = 20
	MaxSearchLimit            = 50
	DefaultSearchCategories   = "restaurants"
	DefaultSearchSortBy       = "best_match"
)

// RestaurantSearchRequest POST /api/yelp/search のリクエスト
// 緯度経度は必須のためポインタで受け取る（0 と未指定を区別する）
type RestaurantSearchRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Radius     *int     `json:"radius,omitempty" validate:"omitempty,gt=0,max=40000"`
	Limit      *int     `json:"limit,omitempty" validate:"omitempty,gt=0,max=50"` // Yelp の上限は50件
	Categories string   `json:"categories,omitempty"`
	SortBy     string   `json:"sort_by,omitempty" validate:"omitempty,oneof=best_match rating review_count distance"`
}

// RestaurantSearchParams デフォルト値を埋めた検索条件
type RestaurantSearchParams struct {
	Latitude   float64
	Longitude  float64
	Radius     int
	Limit      int
	Categories string
	SortBy     string
}

// NewRestaurantSearchParams 座標のみ指定した検索条件を作成
func NewRestaurantSearchParams(lat, lng float64) RestaurantSearchParams {
	return RestaurantSearchParams{
		Latitude:   lat,
		Longitude:  lng,
		Radius:     DefaultSearchRadiusMeters,
		Limit:      DefaultSearchLimit,
		Categories: DefaultSearchCategories,
		SortBy:     DefaultSearchSortBy,
	}
}

// Params 未指定のオプション項目をデフォルト値で埋める（検証済みのリクエストに対して呼ぶ）
func (r *RestaurantSearchRequest) Params() RestaurantSearchParams {
	p := NewRestaurantSearchParams(*r.Latitude, *r.Longitude)
	if r.Radius != nil {
		p.Radius = *r.Radius
	}
	if r.Limit != nil {
		p.Limit = *r.Limit
	}
	if c := strings.TrimSpace(r.Categories); c != "" {
		p.Categories = c
	}
	if r.SortBy != "" {
		p.SortBy = r.SortBy
	}
	return p
}

// CacheKey キャッシュキー（座標は小数点以下4桁 ≒ 11m で丸める）
func (p RestaurantSearchParams) CacheKey() string {
	return fmt.Sprintf("yelp:%.4f,%.4f:%d:%d:%s:%s", p.Latitude, p.Longitude, p.Radius, p.Limit, p.Categories, p.SortBy)
}
