package mapview

import (
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"TripDine-App/internal/domain/model"
)

type flight struct {
	target model.LatLng
	zoom   int
	done   func()
}

// MemorySurface 画面を持たないSurface実装
// カメラ位置とマーカーを記録し、ユーザー操作は ClickMarker / DragTo で再現する
type MemorySurface struct {
	mu           sync.Mutex
	containerID  string
	center       model.LatLng
	zoom         int
	baseLayers   []string
	markers      map[MarkerHandle]MarkerSpec
	bounds       *orb.Bound
	openPopup    MarkerHandle
	resizeCount  int
	flights      []flight
	clickHandler func(h MarkerHandle)
	moveHandler  func(center model.LatLng, userInitiated bool)
}

// NewMemorySurface 新しいMemorySurfaceを作成
func NewMemorySurface(containerID string) *MemorySurface {
	return &MemorySurface{
		containerID: containerID,
		markers:     make(map[MarkerHandle]MarkerSpec),
	}
}

// MemorySurfaceFactory MemorySurfaceを作成するFactory
// 作成した描画面は Surfaces で参照できる
type MemorySurfaceFactory struct {
	mu       sync.Mutex
	surfaces map[string]*MemorySurface
}

// NewMemorySurfaceFactory 新しいMemorySurfaceFactoryを作成
func NewMemorySurfaceFactory() *MemorySurfaceFactory {
	return &MemorySurfaceFactory{surfaces: make(map[string]*MemorySurface)}
}

func (f *MemorySurfaceFactory) Create(containerID string) (Surface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := NewMemorySurface(containerID)
	f.surfaces[containerID] = s
	return s, nil
}

// Surface コンテナIDで作成済みの描画面を取得する
func (f *MemorySurfaceFactory) Surface(containerID string) (*MemorySurface, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.surfaces[containerID]
	return s, ok
}

func (s *MemorySurface) SetView(center model.LatLng, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.center = center
	s.zoom = zoom
}

func (s *MemorySurface) Center() model.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.center
}

func (s *MemorySurface) AddBaseLayer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseLayers = append(s.baseLayers, name)
}

func (s *MemorySurface) AddMarker(spec MarkerSpec) MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := MarkerHandle(uuid.NewString())
	s.markers[h] = spec
	return h
}

func (s *MemorySurface) RemoveMarker(h MarkerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.markers, h)
	if s.openPopup == h {
		s.openPopup = ""
	}
}

func (s *MemorySurface) FitBounds(b orb.Bound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = &b
	center := b.Center()
	s.center = model.LatLng{Lat: center.Lat(), Lng: center.Lon()}
}

func (s *MemorySurface) PanTo(p model.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.center = p
}

func (s *MemorySurface) FlyTo(p model.LatLng, zoom int, done func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, flight{target: p, zoom: zoom, done: done})
}

func (s *MemorySurface) OpenPopup(h MarkerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.markers[h]; ok {
		s.openPopup = h
	}
}

func (s *MemorySurface) InvalidateSize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resizeCount++
}

func (s *MemorySurface) OnMarkerClick(fn func(h MarkerHandle)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clickHandler = fn
}

func (s *MemorySurface) OnMoveEnd(fn func(center model.LatLng, userInitiated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveHandler = fn
}

// CompleteFlights 進行中のカメラアニメーションを全て終了させる
func (s *MemorySurface) CompleteFlights() int {
	s.mu.Lock()
	flights := s.flights
	s.flights = nil
	s.mu.Unlock()

	for _, f := range flights {
		s.mu.Lock()
		s.center = f.target
		s.zoom = f.zoom
		handler := s.moveHandler
		s.mu.Unlock()

		if handler != nil {
			handler(f.target, false)
		}
		if f.done != nil {
			f.done()
		}
	}
	return len(flights)
}

// ClickMarker マーカーのクリックを再現する
func (s *MemorySurface) ClickMarker(h MarkerHandle) bool {
	s.mu.Lock()
	_, ok := s.markers[h]
	handler := s.clickHandler
	s.mu.Unlock()

	if !ok || handler == nil {
		return false
	}
	handler(h)
	return true
}

// DragTo ユーザーによる地図のドラッグを再現する
func (s *MemorySurface) DragTo(center model.LatLng) {
	s.mu.Lock()
	s.center = center
	handler := s.moveHandler
	s.mu.Unlock()

	if handler != nil {
		handler(center, true)
	}
}

// Markers 表示中のマーカー
func (s *MemorySurface) Markers() map[MarkerHandle]MarkerSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[MarkerHandle]MarkerSpec, len(s.markers))
	for h, spec := range s.markers {
		result[h] = spec
	}
	return result
}

// MarkersOfKind 指定した種類のマーカーのハンドル
func (s *MemorySurface) MarkersOfKind(kind MarkerKind) []MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []MarkerHandle
	for h, spec := range s.markers {
		if spec.Kind == kind {
			result = append(result, h)
		}
	}
	return result
}

// HandleFor キーからマーカーのハンドルを探す
func (s *MemorySurface) HandleFor(key string) (MarkerHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, spec := range s.markers {
		if spec.Key == key {
			return h, true
		}
	}
	return "", false
}

func (s *MemorySurface) Zoom() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

func (s *MemorySurface) BaseLayers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.baseLayers...)
}

// LastBounds 最後に FitBounds で指定した境界
func (s *MemorySurface) LastBounds() (orb.Bound, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bounds == nil {
		return orb.Bound{}, false
	}
	return *s.bounds, true
}

func (s *MemorySurface) OpenPopupHandle() MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openPopup
}

func (s *MemorySurface) ResizeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resizeCount
}

func (s *MemorySurface) PendingFlights() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flights)
}
