package main

import (
	"context"
	"fmt"

	"francoggm/emipay-gateway-go/internal/app/directory"
	"francoggm/emipay-gateway-go/internal/app/ledger"
	"francoggm/emipay-gateway-go/internal/app/server"
	"francoggm/emipay-gateway-go/internal/app/snapshot"
	"francoggm/emipay-gateway-go/internal/app/workers"
	"francoggm/emipay-gateway-go/internal/app/workers/processors"
	"francoggm/emipay-gateway-go/internal/app/workflow"
	"francoggm/emipay-gateway-go/internal/config"
	"francoggm/emipay-gateway-go/internal/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.NewConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	cacheOpts := redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Cache.Host, cfg.Cache.Port),
		Password: cfg.Cache.Password,
		DB:       0,
	}

	rdb := redis.NewClient(&cacheOpts)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		panic(err)
	}

	// Worker queue
	snapshotEventsCh := make(chan any, cfg.Workers.SnapshotBufferSize)

	// Services
	ledgerClient := ledger.NewClient(cfg.Ledger.BaseURL, cfg.Ledger.Timeout, log)
	snapshotService := snapshot.NewService(rdb)

	// Worker processors
	snapshotProcessor := processors.NewSnapshotProcessor(snapshotService)
	snapshotOrchestrator := workers.NewOrchestrator(cfg.Workers.SnapshotCount, snapshotEventsCh, snapshotProcessor, log)
	snapshotOrchestrator.StartWorkers(ctx)

	directoryVM := directory.NewViewModel(ledgerClient, snapshotEventsCh, log)
	directoryVM.WarmStart(ctx, snapshotService)

	machine := workflow.NewMachine(ledgerClient, directoryVM, log)

	srv := server.NewServer(cfg, directoryVM, machine, ledgerClient, log)
	log.Info("gateway listening", "port", cfg.Server.Port, "ledger", cfg.Ledger.BaseURL)
	if err := srv.Run(); err != nil {
		panic(err)
	}

	close(snapshotEventsCh)
}
