package mapview

import (
	"sync"

	"go.uber.org/zap"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
)

// BoundsPadding 結果に合わせて表示範囲を調整するときの余白（幅・高さに対する割合）
const BoundsPadding = 0.1

// MarkerLayer 地図の上にマーカーを載せるレイヤー
// 描画ライブラリが無い場合は全ての操作が何もしない
type MarkerLayer interface {
	Init(containerID string, center model.LatLng, zoom int) bool
	Enabled() bool
	// CenterOn は検索中心のピンを置き換えてカメラを移動する（検索は起動しない）
	CenterOn(lat, lng float64, label string) bool
	// SetSearchCenter は CenterOn に加えて新しい検索コンテキストを通知する
	SetSearchCenter(kind model.OriginKind, lat, lng float64, label string) bool
	OnSearchRequested(fn func(model.SearchContext))
	ReplaceMarkers(specs []MarkerSpec) int
	HighlightFromExternalSelection(key string) bool
	MarkerCount() int
	Resize()
}

type placedMarker struct {
	handle MarkerHandle
	spec   MarkerSpec
}

// markerSet 描画面に置いたマーカーを追加順に保持する
// 同じキーの項目が複数あってもそれぞれにマーカーを置く。キー検索は最初のマーカーを返す
type markerSet struct {
	placed []placedMarker
	byKey  map[string]int
}

func newMarkerSet() *markerSet {
	return &markerSet{byKey: make(map[string]int)}
}

func (m *markerSet) add(s Surface, spec MarkerSpec) bool {
	if !spec.Position.IsFinite() {
		return false
	}
	if _, ok := m.byKey[spec.Key]; !ok {
		m.byKey[spec.Key] = len(m.placed)
	}
	m.placed = append(m.placed, placedMarker{handle: s.AddMarker(spec), spec: spec})
	return true
}

func (m *markerSet) clear(s Surface) {
	for _, p := range m.placed {
		s.RemoveMarker(p.handle)
	}
	m.placed = nil
	m.byKey = make(map[string]int)
}

func (m *markerSet) lookup(key string) (placedMarker, bool) {
	i, ok := m.byKey[key]
	if !ok {
		return placedMarker{}, false
	}
	return m.placed[i], true
}

func (m *markerSet) byHandle(h MarkerHandle) (MarkerSpec, bool) {
	for _, p := range m.placed {
		if p.handle == h {
			return p.spec, true
		}
	}
	return MarkerSpec{}, false
}

func (m *markerSet) positions() []model.LatLng {
	points := make([]model.LatLng, 0, len(m.placed))
	for _, p := range m.placed {
		points = append(points, p.spec.Position)
	}
	return points
}

func (m *markerSet) len() int {
	return len(m.placed)
}

// baseLayer LocalMapとWorldMapに共通する処理
// 自身のロックを保持したままリスナーを呼ばない
type baseLayer struct {
	mu             sync.Mutex
	name           string
	logger         *zap.Logger
	surface        Surface
	enabled        bool
	results        *markerSet
	pin            *placedMarker
	searchListener func(model.SearchContext)
}

func newBaseLayer(name string, logger *zap.Logger) *baseLayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &baseLayer{
		name:    name,
		logger:  logger,
		results: newMarkerSet(),
	}
}

// attach は mu を保持した状態で呼ぶ
func (l *baseLayer) attach(surface Surface, center model.LatLng, zoom int) {
	surface.SetView(center, zoom)
	surface.AddBaseLayer("openstreetmap")
	l.surface = surface
	l.enabled = true
}

// disable は mu を保持した状態で呼ぶ
func (l *baseLayer) disable(containerID string, err error) {
	l.logger.Warn("⚠️ 地図を初期化できません。地図機能を無効化します",
		zap.String("layer", l.name), zap.String("container", containerID), zap.Error(err))
	l.surface = nil
	l.enabled = false
}

// Enabled 描画面が使えるかどうか
func (l *baseLayer) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// OnSearchRequested 検索中心の変更を受け取るリスナーを登録する
func (l *baseLayer) OnSearchRequested(fn func(model.SearchContext)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.searchListener = fn
}

// CenterOn 検索中心のピンを置き換えてカメラを移動する
func (l *baseLayer) CenterOn(lat, lng float64, label string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.centerOnLocked(model.LatLng{Lat: lat, Lng: lng}, label)
}

func (l *baseLayer) centerOnLocked(p model.LatLng, label string) bool {
	if !l.enabled {
		return false
	}
	if !p.IsFinite() {
		l.logger.Warn("⚠️ 無効な座標のため検索中心を変更しません",
			zap.String("layer", l.name), zap.Float64("lat", p.Lat), zap.Float64("lng", p.Lng))
		return false
	}

	if l.pin != nil {
		l.surface.RemoveMarker(l.pin.handle)
	}
	spec := searchCenterMarker(p, label)
	l.pin = &placedMarker{handle: l.surface.AddMarker(spec), spec: spec}
	l.surface.PanTo(p)
	return true
}

// SetSearchCenter 検索中心を変更し、新しい検索コンテキストを通知する
func (l *baseLayer) SetSearchCenter(kind model.OriginKind, lat, lng float64, label string) bool {
	p := model.LatLng{Lat: lat, Lng: lng}

	l.mu.Lock()
	ok := l.centerOnLocked(p, label)
	listener := l.searchListener
	l.mu.Unlock()

	if !ok {
		return false
	}
	if listener != nil {
		listener(model.NewSearchContext(kind, "", p, label))
	}
	return true
}

// SearchCenter 現在の検索中心
func (l *baseLayer) SearchCenter() (model.LatLng, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pin == nil {
		return model.LatLng{}, false
	}
	return l.pin.spec.Position, true
}

// ReplaceMarkers 結果マーカーを全て削除してから追加し、表示範囲を結果と検索中心に合わせる
// 検索中心のピンは残す
func (l *baseLayer) ReplaceMarkers(specs []MarkerSpec) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return 0
	}

	l.results.clear(l.surface)
	for _, spec := range specs {
		if !l.results.add(l.surface, spec) {
			l.logger.Debug("座標が無効なマーカーをスキップ", zap.String("layer", l.name), zap.String("key", spec.Key))
		}
	}
	if l.results.len() == 0 {
		return 0
	}

	points := l.results.positions()
	if l.pin != nil {
		points = append(points, l.pin.spec.Position)
	}
	if bound, ok := helper.BoundsWithPadding(points, BoundsPadding); ok {
		l.surface.FitBounds(bound)
	}
	return l.results.len()
}

// HighlightFromExternalSelection キーに一致するマーカーのポップアップを開いて中央に表示する
func (l *baseLayer) HighlightFromExternalSelection(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return false
	}

	placed, ok := l.results.lookup(key)
	if !ok {
		return false
	}
	l.surface.OpenPopup(placed.handle)
	l.surface.PanTo(placed.spec.Position)
	return true
}

// MarkerCount 結果マーカーの数（検索中心のピンは含まない）
func (l *baseLayer) MarkerCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results.len()
}

// Resize コンテナの大きさが変わった後に描画面を再計算させる
func (l *baseLayer) Resize() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.enabled {
		l.surface.InvalidateSize()
	}
}
