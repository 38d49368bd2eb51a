package mapview

import (
	"context"
	"time"

	"go.uber.org/zap"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/platform"
)

const (
	MyLocationLabel           = "My Location"
	SearchAreaLabel           = "Map Area"
	DefaultLocationLabel      = "San Francisco, CA"
	DefaultGeolocationTimeout = 10 * time.Second
)

// DefaultLocalCenter 検索中心が一度も決まっていないときに使う座標
var DefaultLocalCenter = model.LatLng{Lat: 37.7749, Lng: -122.4194}

// RestaurantHighlighter サイドバーのレストランカードを強調表示する
type RestaurantHighlighter interface {
	HighlightRestaurant(id string)
}

// LocalMapOptions LocalMapの依存
type LocalMapOptions struct {
	Capability         Capability
	Geolocator         platform.Geolocator
	Scheduler          platform.Scheduler
	Highlighter        RestaurantHighlighter
	GeolocationTimeout time.Duration
	Logger             *zap.Logger
}

// LocalMap 検索中心の周辺レストランを表示する2D地図
type LocalMap struct {
	*baseLayer
	capability        Capability
	geolocator        platform.Geolocator
	scheduler         platform.Scheduler
	highlighter       RestaurantHighlighter
	timeout           time.Duration
	searchAreaVisible bool
}

// NewLocalMap 新しいLocalMapを作成
func NewLocalMap(opts LocalMapOptions) *LocalMap {
	if opts.Scheduler == nil {
		opts.Scheduler = platform.NewScheduler()
	}
	if opts.GeolocationTimeout <= 0 {
		opts.GeolocationTimeout = DefaultGeolocationTimeout
	}
	return &LocalMap{
		baseLayer:   newBaseLayer("local", opts.Logger),
		capability:  opts.Capability,
		geolocator:  opts.Geolocator,
		scheduler:   opts.Scheduler,
		highlighter: opts.Highlighter,
		timeout:     opts.GeolocationTimeout,
	}
}

// Init コンテナに地図を作成する。描画ライブラリが無い場合は無効状態になり false を返す
func (l *LocalMap) Init(containerID string, center model.LatLng, zoom int) bool {
	l.mu.Lock()
	surface, err := l.capability.create(containerID)
	if err != nil {
		l.disable(containerID, err)
		l.mu.Unlock()
		return false
	}
	l.attach(surface, center, zoom)
	l.mu.Unlock()

	surface.OnMarkerClick(l.handleMarkerClick)
	surface.OnMoveEnd(l.handleMoveEnd)
	return true
}

// HighlightFromExternalSelection ポップアップを開いて中央に表示し、サイドバーのカードも強調する
func (l *LocalMap) HighlightFromExternalSelection(key string) bool {
	if !l.baseLayer.HighlightFromExternalSelection(key) {
		return false
	}
	if l.highlighter != nil {
		l.highlighter.HighlightRestaurant(key)
	}
	return true
}

func (l *LocalMap) handleMarkerClick(h MarkerHandle) {
	l.mu.Lock()
	spec, ok := l.results.byHandle(h)
	if ok {
		l.surface.OpenPopup(h)
	}
	l.mu.Unlock()

	if ok && l.highlighter != nil {
		l.highlighter.HighlightRestaurant(spec.Key)
	}
}

func (l *LocalMap) handleMoveEnd(_ model.LatLng, userInitiated bool) {
	if !userInitiated {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.searchAreaVisible = true
}

// SearchAreaVisible 「このエリアを検索」ボタンを表示すべきかどうか
func (l *LocalMap) SearchAreaVisible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.searchAreaVisible
}

// GeolocationTimeout 現在地取得の待ち時間
func (l *LocalMap) GeolocationTimeout() time.Duration {
	return l.timeout
}

// SearchThisArea 現在の地図中心を新しい検索中心にする
func (l *LocalMap) SearchThisArea() bool {
	l.mu.Lock()
	if !l.enabled || !l.searchAreaVisible {
		l.mu.Unlock()
		return false
	}
	l.searchAreaVisible = false
	center := l.surface.Center()
	l.mu.Unlock()

	return l.SetSearchCenter(model.OriginMapArea, center.Lat, center.Lng, SearchAreaLabel)
}

// RequestUserLocation 端末の現在地を非同期で取得し、取得できたら検索中心にする
// 取得に失敗した場合は現在の検索中心を維持する
func (l *LocalMap) RequestUserLocation() {
	if !l.Enabled() {
		return
	}
	if l.geolocator == nil {
		l.locationFailed(platform.ErrGeolocationUnsupported)
		return
	}

	l.scheduler.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		p, err := l.geolocator.CurrentPosition(ctx)
		if err == nil && !p.IsFinite() {
			err = platform.ErrPositionUnavailable
		}
		if err != nil {
			l.locationFailed(err)
			return
		}
		l.SetSearchCenter(model.OriginGPS, p.Lat, p.Lng, MyLocationLabel)
	})
}

func (l *LocalMap) locationFailed(err error) {
	l.logger.Warn("⚠️ 現在地を取得できませんでした",
		zap.String("reason", platform.DescribeGeolocationError(err)), zap.Error(err))

	if _, ok := l.SearchCenter(); ok {
		return
	}
	l.SetSearchCenter(model.OriginMapArea, DefaultLocalCenter.Lat, DefaultLocalCenter.Lng, DefaultLocationLabel)
}
