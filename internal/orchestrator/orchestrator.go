package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"TripDine-App/internal/application"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/domain/service"
	"TripDine-App/internal/mapview"
	"TripDine-App/internal/platform"
)

// 切替ボタンの表示
const (
	localToggleLabel = "Nearby Restaurants"
	localToggleIcon  = "🍽️"
	worldToggleLabel = "World Map"
	worldToggleIcon  = "🌎"
)

// Config ViewOrchestratorの設定
type Config struct {
	ResizeDelay          time.Duration
	TripMarkerOpensLocal bool // 旅程マーカーのクリックでローカル表示へ切り替える
	WorldCenter          model.LatLng
	WorldZoom            int
	LocalCenter          model.LatLng
	LocalZoom            int
}

// DefaultConfig 既定の設定
func DefaultConfig() Config {
	return Config{
		ResizeDelay: 100 * time.Millisecond,
		WorldCenter: model.LatLng{Lat: 20, Lng: 0},
		WorldZoom:   2,
		LocalCenter: mapview.DefaultLocalCenter,
		LocalZoom:   13,
	}
}

// Dependencies ViewOrchestratorの依存
type Dependencies struct {
	Views       Views
	Sidebar     Sidebar
	Local       LocalLayer
	World       WorldLayer
	Trips       repository.TripsRepository
	Restaurants application.RestaurantDataSource
	TravelLog   service.TravelLogService
	Scheduler   platform.Scheduler
	Now         func() time.Time
	Logger      *zap.Logger
}

type tripKey struct {
	kind   model.TripKind
	tripID string
}

// ViewOrchestrator 世界地図・ローカル地図・旅の記録の3つのビューと検索コンテキストを管理する
// 外部への呼び出しは mu を保持したまま行う。レイヤーはロックを保持したまま
// ViewOrchestrator を呼び出さない
type ViewOrchestrator struct {
	mu          sync.Mutex
	cfg         Config
	views       Views
	sidebar     Sidebar
	local       LocalLayer
	world       WorldLayer
	trips       repository.TripsRepository
	dataSource  application.RestaurantDataSource
	travelLog   service.TravelLogService
	scheduler   platform.Scheduler
	now         func() time.Time
	logger      *zap.Logger
	initialized bool
	view        model.ViewState
	selector    *service.TripSelector
	active      *model.SearchContext
	generation  uint64
	restaurants []model.Restaurant
	activeTrip  *tripKey
}

// NewViewOrchestrator ViewOrchestratorの新しいインスタンスを作成
func NewViewOrchestrator(cfg Config, deps Dependencies) *ViewOrchestrator {
	if deps.Scheduler == nil {
		deps.Scheduler = platform.NewScheduler()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ViewOrchestrator{
		cfg:        cfg,
		views:      deps.Views,
		sidebar:    deps.Sidebar,
		local:      deps.Local,
		world:      deps.World,
		trips:      deps.Trips,
		dataSource: deps.Restaurants,
		travelLog:  deps.TravelLog,
		scheduler:  deps.Scheduler,
		now:        deps.Now,
		logger:     deps.Logger,
		view:       model.ViewWorld,
		selector:   service.NewTripSelector(model.TripCollections{}),
	}
}

// Init 世界地図を表示し、旅程を読み込んでデフォルト旅程の周辺レストランを先読みする
// 2回目以降の呼び出しは何もしない
func (o *ViewOrchestrator) Init(ctx context.Context) {
	o.mu.Lock()
	if o.initialized {
		o.mu.Unlock()
		return
	}
	o.initialized = true

	trips := o.loadTrips(ctx)
	o.selector = service.NewTripSelector(trips)
	o.showLocked(model.ViewWorld)

	o.world.Init(WorldMapContainer, o.cfg.WorldCenter, o.cfg.WorldZoom)
	o.world.OnTripClicked(o.OnTripMarkerClicked)
	o.world.ShowTrips(trips)

	o.local.Init(LocalMapContainer, o.cfg.LocalCenter, o.cfg.LocalZoom)
	o.local.OnSearchRequested(o.OnSearchContextChange)

	o.sidebar.RenderTrips(trips)
	o.sidebar.RenderTripOptions(o.selector.BuildOptions())

	sc, ok := o.selector.DefaultContext(o.now())
	o.mu.Unlock()

	if !ok {
		o.logger.Info("デフォルトの旅程が無いため先読みをスキップ")
		return
	}
	o.logger.Info("🔄 デフォルト旅程の周辺レストランを先読み", zap.String("label", sc.Label))
	o.OnSearchContextChange(sc)
}

func (o *ViewOrchestrator) loadTrips(ctx context.Context) model.TripCollections {
	var trips model.TripCollections
	if o.trips == nil {
		return trips
	}

	past, err := o.trips.GetPastTrips(ctx)
	if err != nil {
		o.logger.Error("❌ 過去の旅程の取得に失敗", zap.Error(err))
	} else {
		trips.Past = past
	}

	upcoming, err := o.trips.GetUpcomingTrips(ctx)
	if err != nil {
		o.logger.Error("❌ 予定の旅程の取得に失敗", zap.Error(err))
	} else {
		trips.Upcoming = upcoming
	}
	return trips
}

// View 現在表示中のビュー
func (o *ViewOrchestrator) View() model.ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view
}

// ToggleView 世界地図とローカル地図を切り替える。旅の記録の表示中は世界地図に戻る
// 必要なコンテナが無い場合は何もしない
func (o *ViewOrchestrator) ToggleView() {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.view {
	case model.ViewWorld:
		if !o.views.Exists(model.ViewWorld) || !o.views.Exists(model.ViewLocal) {
			o.logger.Debug("ローカル地図のコンテナが無いため切り替えない")
			return
		}
		o.showLocked(model.ViewLocal)
		o.scheduleResize(o.local)
	default:
		if !o.views.Exists(model.ViewWorld) || !o.views.Exists(o.view) {
			o.logger.Debug("世界地図のコンテナが無いため切り替えない", zap.String("view", string(o.view)))
			return
		}
		o.showLocked(model.ViewWorld)
		o.scheduleResize(o.world)
	}
}

// ShowTravelLog 旅の記録を生成し直して表示する
func (o *ViewOrchestrator) ShowTravelLog(ctx context.Context) error {
	o.mu.Lock()
	exists := o.views.Exists(model.ViewTravelLog)
	o.mu.Unlock()
	if !exists {
		return nil
	}

	travelLog, err := o.travelLog.Generate(ctx)
	if err != nil {
		o.logger.Error("❌ 旅の記録の生成に失敗", zap.Error(err))
		return fmt.Errorf("旅の記録の生成に失敗: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.views.RenderTravelLog(travelLog)
	o.showLocked(model.ViewTravelLog)
	return nil
}

// showLocked は対象のビューだけを表示する
func (o *ViewOrchestrator) showLocked(target model.ViewState) {
	for _, v := range model.AllViews() {
		if o.views.Exists(v) {
			o.views.SetVisible(v, v == target)
		}
	}
	o.view = target

	if target == model.ViewWorld {
		o.views.SetToggleButton(localToggleLabel, localToggleIcon)
	} else {
		o.views.SetToggleButton(worldToggleLabel, worldToggleIcon)
	}
}

// scheduleResize 表示切替のレイアウト確定後に地図の大きさを再計算させる
func (o *ViewOrchestrator) scheduleResize(layer mapview.MarkerLayer) {
	if layer.Enabled() {
		o.scheduler.After(o.cfg.ResizeDelay, layer.Resize)
	}
}

// OnSearchContextChange 検索コンテキストを置き換え、周辺レストランを非同期で取得する
// 結果が届く前に次のコンテキストに変わった場合、古い結果は破棄する
func (o *ViewOrchestrator) OnSearchContextChange(sc model.SearchContext) {
	if !sc.Coordinate.IsFinite() {
		o.logger.Warn("⚠️ 座標が無効な検索コンテキストを無視",
			zap.String("label", sc.Label), zap.String("origin", string(sc.OriginKind)))
		return
	}

	o.mu.Lock()
	o.generation++
	gen := o.generation
	o.active = &sc
	o.local.CenterOn(sc.Coordinate.Lat, sc.Coordinate.Lng, sc.Label)
	o.sidebar.ShowLoading(sc.Label)
	o.mu.Unlock()

	o.scheduler.Go(func() {
		restaurants := o.dataSource.Fetch(context.Background(), sc.Coordinate.Lat, sc.Coordinate.Lng)
		o.applyResults(gen, sc, restaurants)
	})
}

func (o *ViewOrchestrator) applyResults(gen uint64, sc model.SearchContext, restaurants []model.Restaurant) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.logger.Debug("古い検索結果を破棄", zap.String("label", sc.Label), zap.Int("count", len(restaurants)))
		return
	}

	o.restaurants = restaurants
	if len(restaurants) == 0 {
		o.sidebar.ShowEmpty(fmt.Sprintf("No restaurants found near %s", sc.Label))
		return
	}

	o.sidebar.ShowRestaurants(sc, restaurants)
	o.local.ReplaceMarkers(mapview.RestaurantMarkers(restaurants))
	o.logger.Info("✅ 周辺レストランを表示", zap.String("label", sc.Label), zap.Int("count", len(restaurants)))
}

// OnTripSelected セレクタで選ばれた旅程を検索コンテキストにする
func (o *ViewOrchestrator) OnTripSelected(kind model.TripKind, tripID string) bool {
	o.mu.Lock()
	sc, ok := o.selector.Select(kind, tripID)
	o.mu.Unlock()

	if !ok {
		o.logger.Warn("⚠️ 選択された旅程を検索に使えません",
			zap.String("kind", string(kind)), zap.String("tripId", tripID))
		return false
	}
	o.OnSearchContextChange(sc)
	return true
}

// OnTripMarkerClicked 旅程カードを1枚だけ選択状態にし、世界地図のカメラを旅程へ移動する
func (o *ViewOrchestrator) OnTripMarkerClicked(kind model.TripKind, tripID string) {
	o.mu.Lock()
	trip, ok := o.selector.Find(kind, tripID)
	if !ok {
		o.mu.Unlock()
		return
	}

	o.activeTrip = &tripKey{kind: kind, tripID: tripID}
	o.sidebar.ActivateTripCard(kind, tripID)
	o.world.FocusTrip(kind, *trip)

	var sc model.SearchContext
	openLocal := false
	if o.cfg.TripMarkerOpensLocal {
		sc, openLocal = o.selector.Select(kind, tripID)
		if openLocal && o.view != model.ViewLocal && o.views.Exists(model.ViewLocal) {
			o.showLocked(model.ViewLocal)
			o.scheduleResize(o.local)
		}
	}
	o.mu.Unlock()

	if openLocal {
		o.OnSearchContextChange(sc)
	}
}

// OnRestaurantSelected サイドバーで選ばれたレストランを地図上で強調する
func (o *ViewOrchestrator) OnRestaurantSelected(restaurantID string) bool {
	return o.local.HighlightFromExternalSelection(restaurantID)
}

// RequestUserLocation 現在地を検索中心にする
func (o *ViewOrchestrator) RequestUserLocation() {
	o.local.RequestUserLocation()
}

// ActiveContext 現在の検索コンテキスト
func (o *ViewOrchestrator) ActiveContext() (model.SearchContext, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == nil {
		return model.SearchContext{}, false
	}
	return *o.active, true
}

// Restaurants 現在の検索コンテキストの結果
func (o *ViewOrchestrator) Restaurants() []model.Restaurant {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]model.Restaurant(nil), o.restaurants...)
}

// ActiveTrip 選択状態の旅程カード
func (o *ViewOrchestrator) ActiveTrip() (model.TripKind, string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.activeTrip == nil {
		return "", "", false
	}
	return o.activeTrip.kind, o.activeTrip.tripID, true
}
