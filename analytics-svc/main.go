package main

import (
	httpapi "foodfinder/analytics-svc/internal/api/http"
	"foodfinder/analytics-svc/internal/service"
	"foodfinder/config"
)

func main() {
	settings := config.Load("8083")
	config.InitLogger("analytics-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewAnalyticsService(db, rdb))
	httpapi.StartServer(":"+settings.Port, httpapi.NewRouter(handler, settings.AllowedOrigins))
}
