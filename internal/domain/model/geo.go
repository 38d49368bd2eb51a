package model

import "math"

// LatLng 緯度経度を表す基本的な型（地図の中心・マーカー位置などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsFinite 緯度経度がどちらも有限の数値かチェック
func (p LatLng) IsFinite() bool {
	return isFinite(p.Lat) && isFinite(p.Lng)
}

// Coordinates 旅程データやYelpレスポンスで使われる座標表現
type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// ToLatLng Coordinates を LatLng に変換
func (c Coordinates) ToLatLng() LatLng {
	return LatLng{Lat: c.Latitude, Lng: c.Longitude}
}

// RestaurantCoordinates Yelp の座標表現。緯度経度が null の店舗もある
type RestaurantCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NewRestaurantCoordinates 緯度経度から RestaurantCoordinates を作成
func NewRestaurantCoordinates(lat, lng float64) RestaurantCoordinates {
	return RestaurantCoordinates{Latitude: &lat, Longitude: &lng}
}

// ToLatLng 緯度経度が揃っていて有限なら LatLng に変換する
func (c RestaurantCoordinates) ToLatLng() (LatLng, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return LatLng{}, false
	}
	p := LatLng{Lat: *c.Latitude, Lng: *c.Longitude}
	if !p.IsFinite() {
		return LatLng{}, false
	}
	return p, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
