package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"TripDine-App/internal/application"
	"TripDine-App/internal/config"
	domainrepo "TripDine-App/internal/domain/repository"
	"TripDine-App/internal/domain/service"
	"TripDine-App/internal/handler"
	"TripDine-App/internal/infrastructure/database"
	"TripDine-App/internal/infrastructure/firestore"
	"TripDine-App/internal/infrastructure/search"
	"TripDine-App/internal/infrastructure/yelp"
	"TripDine-App/internal/logger"
	"TripDine-App/internal/repository"
)

func main() {
	cfg := config.Load()

	appLogger := logger.New(cfg.App.LogFilePath, cfg.IsProduction())
	defer func() { _ = appLogger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	tripsRepo, closeTrips, err := newTripsRepository(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("旅程リポジトリの初期化失敗: %v", err)
	}
	defer closeTrips()

	restaurantsRepo, err := newRestaurantsRepository(cfg, appLogger)
	if err != nil {
		log.Fatalf("レストランリポジトリの初期化失敗: %v", err)
	}

	yelpClient := yelp.NewClient(cfg.Yelp.APIKey, cfg.Yelp.BaseURL, cfg.Yelp.Timeout)
	if cfg.Yelp.APIKey == "" {
		appLogger.Warn("⚠️ YELP_API_KEY が設定されていません。検索はサンプルデータで代替します")
	}

	// 検索の取得元: APIキーがあればYelp、無ければ参照データのみ
	var searchProvider domainrepo.RestaurantSearchProvider
	if cfg.Yelp.APIKey != "" {
		searchProvider = yelpClient
	}

	searchCache := repository.NewSearchCacheRepository(cfg.Yelp.CacheTTL)
	proxyService := application.NewRestaurantProxyService(yelpClient, searchCache, appLogger)
	dataSource := application.NewRestaurantDataSource(searchProvider, restaurantsRepo, appLogger)
	tripService := application.NewTripService(tripsRepo)
	travelLogService := service.NewTravelLogService(tripsRepo, restaurantsRepo)

	if cfg.Yelp.APIKey != "" {
		prewarmer := application.NewSearchPrewarmer(proxyService, application.DefaultPrewarmConcurrency, appLogger)
		go func() {
			if _, err := prewarmer.PrewarmUpcomingTrips(ctx, tripService); err != nil {
				appLogger.Warn("⚠️ 検索の先読みに失敗", zap.Error(err))
			}
		}()
	}

	router := handler.NewRouter(
		handler.NewRestaurantHandler(proxyService, dataSource, appLogger),
		handler.NewTripHandler(tripService, travelLogService, appLogger),
		cfg.App.StaticDir,
		appLogger,
	)

	appLogger.Info("🚀 TripDine-App server starting",
		zap.String("port", cfg.App.Port),
		zap.String("tripSource", cfg.Data.TripSource),
		zap.String("restaurantSource", cfg.Data.RestaurantSource))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("サーバーの起動に失敗", zap.Error(err))
	}
}

func newTripsRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domainrepo.TripsRepository, func(), error) {
	noop := func() {}

	switch cfg.Data.TripSource {
	case config.SourceStatic:
		repo, err := repository.NewSampleTripsRepository()
		return repo, noop, err

	case config.SourcePostgres:
		client, err := database.NewPostgreSQLClient(cfg.Data.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := client.HealthCheck(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("PostgreSQLヘルスチェック失敗: %w", err)
		}
		logger.Info("✅ PostgreSQL connection successful")
		return repository.NewPostgresTripsRepository(client), closer(client, logger), nil

	case config.SourceSupabase:
		client, err := database.NewSupabaseClient(cfg.Data.SupabaseURL, cfg.Data.SupabaseAnonKey)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("✅ Supabase client initialized")
		return repository.NewSupabaseTripsRepository(client), noop, nil

	case config.SourceFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.Firestore.ProjectID, logger)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewFirestoreTripsRepository(client.GetClient()), closer(client, logger), nil

	default:
		return nil, noop, fmt.Errorf("未対応のTRIP_SOURCE: %s", cfg.Data.TripSource)
	}
}

func newRestaurantsRepository(cfg *config.Config, logger *zap.Logger) (domainrepo.RestaurantsRepository, error) {
	switch cfg.Data.RestaurantSource {
	case config.SourceStatic:
		return repository.NewSampleRestaurantsRepository()

	case config.SourceElasticsearch:
		client, err := search.NewElasticsearchClient(cfg.Search.ElasticsearchURL, cfg.Search.Index)
		if err != nil {
			return nil, err
		}
		logger.Info("✅ Elasticsearch client initialized", zap.String("index", cfg.Search.Index))
		return repository.NewElasticsearchRestaurantsRepository(client), nil

	default:
		return nil, fmt.Errorf("未対応のRESTAURANT_SOURCE: %s", cfg.Data.RestaurantSource)
	}
}

func closer(c io.Closer, logger *zap.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("⚠️ 接続のクローズに失敗", zap.Error(err))
		}
	}
}
