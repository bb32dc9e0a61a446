package main

import (
	"context"
	"os/signal"
	"syscall"

	"foodfinder/agg-svc/internal/service"
	"foodfinder/agg-svc/internal/storage"
	"foodfinder/config"
)

func main() {
	settings := config.Load("")
	log := config.InitLogger("agg-svc")

	db := config.MustInitPostgres()
	defer db.Close()
	config.MustMigrate(db, storage.Migrations, "migrations", storage.MigrationsTable)

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.SearchTopic, "agg-svc")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.WithField("topic", settings.SearchTopic).Info("aggregation service running")
	service.NewConsumer(reader, storage.NewStore(db, rdb)).Start(ctx)
}
