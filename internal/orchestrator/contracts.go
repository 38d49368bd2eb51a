package orchestrator

import (
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/mapview"
)

// コンテナID
const (
	WorldMapContainer = "world-map"
	LocalMapContainer = "local-map"
)

// Views 3つのビューのコンテナと切替ボタン
type Views interface {
	Exists(view model.ViewState) bool
	SetVisible(view model.ViewState, visible bool)
	SetToggleButton(label, icon string)
	RenderTravelLog(travelLog *model.TravelLog)
}

// Sidebar 旅程一覧とレストラン一覧を表示するサイドバー
type Sidebar interface {
	mapview.RestaurantHighlighter
	RenderTrips(trips model.TripCollections)
	RenderTripOptions(groups []model.TripOptionGroup)
	// ActivateTripCard は指定した旅程カードだけを選択状態にする
	ActivateTripCard(kind model.TripKind, tripID string)
	ShowLoading(label string)
	ShowRestaurants(sc model.SearchContext, restaurants []model.Restaurant)
	ShowEmpty(message string)
}

// LocalLayer 周辺レストランを表示する地図
type LocalLayer interface {
	mapview.MarkerLayer
	RequestUserLocation()
}

// WorldLayer 旅程を表示する世界地図
type WorldLayer interface {
	mapview.MarkerLayer
	ShowTrips(trips model.TripCollections) int
	FocusTrip(kind model.TripKind, trip model.Trip) bool
	OnTripClicked(fn func(kind model.TripKind, tripID string))
}

var (
	_ LocalLayer = (*mapview.LocalMap)(nil)
	_ WorldLayer = (*mapview.WorldMap)(nil)
)
