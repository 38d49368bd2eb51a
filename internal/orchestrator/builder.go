package orchestrator

import (
	"go.uber.org/zap"

	"TripDine-App/internal/config"
	"TripDine-App/internal/mapview"
	"TripDine-App/internal/platform"
)

// LayerOptions 地図レイヤーの描画と位置情報の依存
type LayerOptions struct {
	Local      mapview.Capability
	Globe      mapview.Capability
	Flat       mapview.Capability
	Geolocator platform.Geolocator
}

// ConfigFromView 環境変数の表示設定を反映した Config を作成
func ConfigFromView(view config.ViewConfig) Config {
	cfg := DefaultConfig()
	cfg.TripMarkerOpensLocal = view.TripMarkerOpensLocal
	if view.ResizeDelay > 0 {
		cfg.ResizeDelay = view.ResizeDelay
	}
	return cfg
}

// NewFromConfig 表示設定から地図レイヤーを作成し、ViewOrchestrator を組み立てる
// deps.Local と deps.World はここで作成したレイヤーで置き換える
func NewFromConfig(view config.ViewConfig, layers LayerOptions, deps Dependencies) *ViewOrchestrator {
	if deps.Scheduler == nil {
		deps.Scheduler = platform.NewScheduler()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	deps.Local = mapview.NewLocalMap(mapview.LocalMapOptions{
		Capability:         layers.Local,
		Geolocator:         layers.Geolocator,
		Scheduler:          deps.Scheduler,
		Highlighter:        deps.Sidebar,
		GeolocationTimeout: view.GeolocationTimeout,
		Logger:             deps.Logger,
	})
	deps.World = mapview.NewWorldMap(mapview.WorldMapOptions{
		Globe:  layers.Globe,
		Flat:   layers.Flat,
		Logger: deps.Logger,
	})

	return NewViewOrchestrator(ConfigFromView(view), deps)
}
