package mapview

import (
	"errors"

	"github.com/paulmach/orb"

	"TripDine-App/internal/domain/model"
)

// ErrSurfaceUnavailable 描画ライブラリが読み込まれていない
var ErrSurfaceUnavailable = errors.New("map surface is unavailable")

// MarkerKind マーカーの種類
type MarkerKind string

const (
	MarkerRestaurant   MarkerKind = "restaurant"
	MarkerSearchCenter MarkerKind = "search-center"
	MarkerPastTrip     MarkerKind = "trip-past"
	MarkerUpcomingTrip MarkerKind = "trip-upcoming"
	MarkerNearbyVenue  MarkerKind = "nearby-venue"
)

// MarkerSpec 描画面に追加するマーカー
type MarkerSpec struct {
	Key      string // 同じレイヤー内で一意なキー（レストランIDなど）
	Kind     MarkerKind
	Position model.LatLng
	Title    string
	Popup    string
	Color    string
}

// MarkerHandle 描画面が発行するマーカーの識別子
type MarkerHandle string

// Surface 地図ライブラリの描画面
type Surface interface {
	SetView(center model.LatLng, zoom int)
	Center() model.LatLng
	AddBaseLayer(name string)
	AddMarker(spec MarkerSpec) MarkerHandle
	RemoveMarker(h MarkerHandle)
	FitBounds(b orb.Bound)
	PanTo(p model.LatLng)
	// FlyTo はアニメーション終了後に done を呼ぶ
	FlyTo(p model.LatLng, zoom int, done func())
	OpenPopup(h MarkerHandle)
	InvalidateSize()
	OnMarkerClick(fn func(h MarkerHandle))
	// OnMoveEnd はカメラ移動の終了ごとに呼ばれる。userInitiated はドラッグ・ズームによる移動
	OnMoveEnd(fn func(center model.LatLng, userInitiated bool))
}

// SurfaceFactory コンテナに描画面を作成する
type SurfaceFactory interface {
	Create(containerID string) (Surface, error)
}

// SurfaceFactoryFunc 関数をSurfaceFactoryとして使う
type SurfaceFactoryFunc func(containerID string) (Surface, error)

func (f SurfaceFactoryFunc) Create(containerID string) (Surface, error) {
	return f(containerID)
}

// Capability 描画ライブラリの有無
// Available(factory) か Unavailable() のどちらかで作る
type Capability struct {
	factory SurfaceFactory
}

// Available 描画ライブラリが使える
func Available(factory SurfaceFactory) Capability {
	return Capability{factory: factory}
}

// Unavailable 描画ライブラリが無い
func Unavailable() Capability {
	return Capability{}
}

// Factory 描画面の生成元を取得する
func (c Capability) Factory() (SurfaceFactory, bool) {
	return c.factory, c.factory != nil
}

// IsAvailable 描画ライブラリが使えるかどうか
func (c Capability) IsAvailable() bool {
	return c.factory != nil
}

func (c Capability) create(containerID string) (Surface, error) {
	factory, ok := c.Factory()
	if !ok {
		return nil, ErrSurfaceUnavailable
	}
	return factory.Create(containerID)
}
