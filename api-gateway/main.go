package main

import (
	"net/http"
	"time"

	"foodfinder/api-gateway/internal/gateway"
	"foodfinder/config"

	"github.com/rs/cors"
)

func main() {
	settings := config.Load("8080")
	log := config.InitLogger("api-gateway")

	gw := gateway.NewGateway(gateway.Config{
		SearchSvcURL:    settings.SearchSvcURL,
		AnalyticsSvcURL: settings.AnalyticsSvcURL,
	}, &http.Client{Timeout: 2 * time.Minute})

	c := cors.New(cors.Options{
		AllowedOrigins: settings.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("API Gateway starting on port %s", settings.Port)
	log.Fatal(server.ListenAndServe())
}
