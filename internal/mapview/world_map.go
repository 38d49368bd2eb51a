package mapview

import (
	"go.uber.org/zap"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/service"
)

// Projection 世界地図の表示方式
type Projection string

const (
	ProjectionNone  Projection = ""
	ProjectionGlobe Projection = "globe"
	ProjectionFlat  Projection = "flat"
)

// DefaultFocusZoom 旅程マーカーへ移動するときのズーム
const DefaultFocusZoom = 12

// WorldMapOptions WorldMapの依存
type WorldMapOptions struct {
	Globe     Capability // 3D地球儀
	Flat      Capability // 地球儀が使えない場合の2D地図
	FocusZoom int
	Logger    *zap.Logger
}

type tripRef struct {
	kind   model.TripKind
	tripID string
}

// WorldMap 過去と予定の旅程を表示する世界地図
type WorldMap struct {
	*baseLayer
	globe        Capability
	flat         Capability
	focusZoom    int
	projection   Projection
	trips        map[string]tripRef
	nearby       *markerSet
	focusGen     uint64
	tripListener func(kind model.TripKind, tripID string)
}

// NewWorldMap 新しいWorldMapを作成
func NewWorldMap(opts WorldMapOptions) *WorldMap {
	if opts.FocusZoom <= 0 {
		opts.FocusZoom = DefaultFocusZoom
	}
	return &WorldMap{
		baseLayer: newBaseLayer("world", opts.Logger),
		globe:     opts.Globe,
		flat:      opts.Flat,
		focusZoom: opts.FocusZoom,
		trips:     make(map[string]tripRef),
		nearby:    newMarkerSet(),
	}
}

// Init 地球儀を作成する。使えない場合は2D地図、どちらも無い場合は無効状態になる
func (w *WorldMap) Init(containerID string, center model.LatLng, zoom int) bool {
	w.mu.Lock()
	projection := ProjectionGlobe
	surface, err := w.globe.create(containerID)
	if err != nil {
		w.logger.Info("3D地球儀を利用できないため2D地図で表示します", zap.Error(err))
		projection = ProjectionFlat
		surface, err = w.flat.create(containerID)
	}
	if err != nil {
		w.disable(containerID, err)
		w.mu.Unlock()
		return false
	}
	w.attach(surface, center, zoom)
	w.projection = projection
	w.mu.Unlock()

	surface.OnMarkerClick(w.handleMarkerClick)
	return true
}

// Projection 現在の表示方式
func (w *WorldMap) Projection() Projection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.projection
}

// OnTripClicked 旅程マーカーのクリックを受け取るリスナーを登録する
func (w *WorldMap) OnTripClicked(fn func(kind model.TripKind, tripID string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tripListener = fn
}

// ShowTrips 旅程マーカーを過去と予定で色分けして表示する
func (w *WorldMap) ShowTrips(trips model.TripCollections) int {
	w.mu.Lock()
	w.trips = make(map[string]tripRef)
	for _, t := range trips.Past {
		w.trips[TripMarkerKey(model.TripKindPast, t.ID)] = tripRef{kind: model.TripKindPast, tripID: t.ID}
	}
	for _, t := range trips.Upcoming {
		w.trips[TripMarkerKey(model.TripKindUpcoming, t.ID)] = tripRef{kind: model.TripKindUpcoming, tripID: t.ID}
	}
	w.mu.Unlock()

	return w.ReplaceMarkers(TripMarkers(trips))
}

func (w *WorldMap) handleMarkerClick(h MarkerHandle) {
	w.mu.Lock()
	spec, ok := w.results.byHandle(h)
	if !ok {
		spec, ok = w.nearby.byHandle(h)
	}
	if ok {
		w.surface.OpenPopup(h)
	}
	ref, isTrip := w.trips[spec.Key]
	listener := w.tripListener
	w.mu.Unlock()

	if ok && isTrip && listener != nil {
		listener(ref.kind, ref.tripID)
	}
}

// FocusTrip 旅程の座標へカメラを移動し、移動後に周辺のサンプル店舗を表示する
// 移動中に別の旅程へ移動した場合、古い移動の結果は表示しない
func (w *WorldMap) FocusTrip(kind model.TripKind, trip model.Trip) bool {
	loc, ok := trip.Location()
	if !ok {
		return false
	}

	w.mu.Lock()
	if !w.enabled {
		w.mu.Unlock()
		return false
	}
	w.focusGen++
	gen := w.focusGen
	surface := w.surface
	zoom := w.focusZoom
	if placed, found := w.results.lookup(TripMarkerKey(kind, trip.ID)); found {
		surface.OpenPopup(placed.handle)
	}
	w.mu.Unlock()

	surface.FlyTo(loc, zoom, func() { w.showNearbyVenues(gen, trip) })
	return true
}

func (w *WorldMap) showNearbyVenues(gen uint64, trip model.Trip) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.focusGen || !w.enabled {
		return
	}

	w.nearby.clear(w.surface)
	for _, spec := range NearbyVenueMarkers(service.SimulateNearbyVenues(&trip)) {
		w.nearby.add(w.surface, spec)
	}
}

// NearbyCount 表示中の周辺サンプル店舗の数
func (w *WorldMap) NearbyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nearby.len()
}
