package main

import (
	"context"
	"net/http"

	"foodfinder/config"
	httpapi "foodfinder/search-svc/internal/api/http"
	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/identity"
	"foodfinder/search-svc/internal/provider"
	"foodfinder/search-svc/internal/service"
	"foodfinder/search-svc/internal/storage"
)

func main() {
	settings := config.Load("8081")
	log := config.InitLogger("search-svc")

	db := config.MustInitPostgres()
	defer db.Close()
	config.MustMigrate(db, storage.Migrations, "migrations", storage.MigrationsTable)

	resolver := identity.NewResolver(identity.DefaultEpsilon)
	repo := storage.NewPostgresRepository(db, resolver)

	if settings.SeedDemoData {
		if err := repo.Seed(context.Background()); err != nil {
			log.WithError(err).Warn("demo seed failed")
		}
	}

	httpClient := &http.Client{}
	if settings.YandexAPIKey == "" {
		log.Warn("YANDEX_MAPS_API_KEY is not set, provider searches will fail and results stay local")
	}

	var places service.PlaceSearcher = provider.NewYandexClient(provider.YandexConfig{
		BaseURL: settings.YandexSearchURL,
		APIKey:  settings.YandexAPIKey,
		Results: settings.ProviderResults,
		Timeout: settings.ProviderTimeout,
	}, httpClient, provider.NewLocalizer(provider.DefaultTranslations), provider.NewCuisineClassifier(provider.DefaultCuisineRules))

	if settings.ProviderCacheTTL > 0 {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		places = provider.NewCachedSearcher(places, storage.NewRedisCache(rdb, settings.ProviderCacheTTL))
	}

	writer := config.NewKafkaWriter(settings.SearchTopic)
	defer writer.Close()

	searchSvc := service.NewSearchService(repo, places, storage.NewKafkaPublisher(writer), resolver, service.SearchConfig{
		DefaultLocation: domain.Coordinates{Lat: settings.DefaultLat, Lon: settings.DefaultLon},
		LocalThreshold:  settings.LocalThreshold,
		ResultLimit:     settings.ResultLimit,
	})
	restSvc := service.NewRestaurantService(repo, service.DefaultQRGenerator{})
	foodSvc := service.NewFoodService(service.NewRecognitionClient(settings.MLServiceURL, httpClient))

	handler := httpapi.NewHandler(searchSvc, restSvc, foodSvc)
	httpapi.StartServer(":"+settings.Port, httpapi.NewRouter(handler, settings.AllowedOrigins))
}
