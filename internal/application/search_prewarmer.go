package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"TripDine-App/internal/domain/model"
)

// DefaultPrewarmConcurrency 同時に実行する先読みの上限
const DefaultPrewarmConcurrency = 5

// PrewarmResult 1件の先読みの結果
type PrewarmResult struct {
	Context model.SearchContext
	Cached  bool // 既にキャッシュにあった
	Error   error
}

// PrewarmReport 先読み全体の結果
type PrewarmReport struct {
	Results  []PrewarmResult
	Warmed   int
	Failed   int
	Duration time.Duration
}

// SearchPrewarmer 複数の検索コンテキストの検索を並行で実行し、プロキシのキャッシュを温める
type SearchPrewarmer struct {
	proxy         RestaurantProxyService
	maxGoroutines int
	logger        *zap.Logger
}

// NewSearchPrewarmer 新しいSearchPrewarmerを作成
func NewSearchPrewarmer(proxy RestaurantProxyService, maxGoroutines int, logger *zap.Logger) *SearchPrewarmer {
	if maxGoroutines <= 0 {
		maxGoroutines = DefaultPrewarmConcurrency
	}
	return &SearchPrewarmer{
		proxy:         proxy,
		maxGoroutines: maxGoroutines,
		logger:        logger,
	}
}

// Prewarm 各コンテキストの座標で既定条件の検索を実行する
// 結果は入力と同じ順序で返す
func (p *SearchPrewarmer) Prewarm(ctx context.Context, contexts []model.SearchContext) PrewarmReport {
	start := time.Now()
	report := PrewarmReport{Results: make([]PrewarmResult, len(contexts))}
	if len(contexts) == 0 {
		return report
	}

	p.logger.Info("🚀 検索の先読み開始", zap.Int("contexts", len(contexts)))

	semaphore := make(chan struct{}, p.maxGoroutines)
	var wg sync.WaitGroup

	for i, sc := range contexts {
		wg.Add(1)
		go func(index int, sc model.SearchContext) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result := PrewarmResult{Context: sc}
			if !sc.Coordinate.IsFinite() {
				result.Error = fmt.Errorf("座標が無効: %s", sc.Label)
				report.Results[index] = result
				return
			}

			params := model.NewRestaurantSearchParams(sc.Coordinate.Lat, sc.Coordinate.Lng)
			_, cached, err := p.proxy.Search(ctx, params)
			result.Cached = cached
			result.Error = err
			report.Results[index] = result
		}(i, sc)
	}
	wg.Wait()

	for _, r := range report.Results {
		if r.Error != nil {
			report.Failed++
			p.logger.Warn("⚠️ 先読みに失敗", zap.String("label", r.Context.Label), zap.Error(r.Error))
			continue
		}
		report.Warmed++
	}
	report.Duration = time.Since(start)

	p.logger.Info("✅ 検索の先読み完了",
		zap.Int("warmed", report.Warmed), zap.Int("failed", report.Failed), zap.Duration("duration", report.Duration))
	return report
}

// PrewarmUpcomingTrips 予定の旅程全ての検索を先読みする
func (p *SearchPrewarmer) PrewarmUpcomingTrips(ctx context.Context, trips TripService) (PrewarmReport, error) {
	collections, err := trips.GetTrips(ctx)
	if err != nil {
		return PrewarmReport{}, fmt.Errorf("先読み対象の旅程の取得に失敗: %w", err)
	}

	contexts := make([]model.SearchContext, 0, len(collections.Upcoming))
	for i := range collections.Upcoming {
		trip := &collections.Upcoming[i]
		sc, err := trips.GetSearchContext(ctx, model.TripKindUpcoming, trip.ID)
		if err != nil {
			p.logger.Debug("座標の無い旅程は先読みしない", zap.String("tripId", trip.ID))
			continue
		}
		contexts = append(contexts, *sc)
	}
	return p.Prewarm(ctx, contexts), nil
}
