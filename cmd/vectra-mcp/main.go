package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	mcpadapter "vectra/internal/adapters/mcp"
	"vectra/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("vectra-mcp: %v", err)
	}

	indexerFlag := flag.String("indexer", cfg.Indexer, "external indexer command")
	timeoutFlag := flag.Duration("timeout", cfg.Timeout, "bound on each indexer invocation")
	flag.Parse()
	cfg.Indexer = *indexerFlag
	cfg.Timeout = *timeoutFlag

	// stdout carries the protocol channel; logs go to stderr.
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("vectra-mcp: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.String("indexer", cfg.Indexer),
		zap.Duration("timeout", cfg.Timeout))

	srv := mcpadapter.New(cfg, logger)
	if err := srv.ServeStdio(); err != nil {
		logger.Fatal("serving stdio", zap.Error(err))
	}
}
