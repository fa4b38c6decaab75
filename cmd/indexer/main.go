package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/mcastros/clothing_store/internal/config"
	"github.com/mcastros/clothing_store/internal/es"
	"github.com/mcastros/clothing_store/internal/indexer"
	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/mykafka"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("missing required env KAFKA_BROKERS")
	}
	if cfg.ESURL == "" {
		log.Fatal("missing required env ES_URL")
	}

	logger := logging.New(cfg.LogLevel)

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}

	reader := mykafka.NewReader(cfg.KafkaBrokers, cfg.KafkaGroupID, mykafka.ProductEventsTopic)

	ix := &indexer.Indexer{
		Reader: reader,
		ES:     esClient,
		Index:  cfg.ESIndex,
		Log:    logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("indexer started", "topic", mykafka.ProductEventsTopic, "index", cfg.ESIndex, "group", cfg.KafkaGroupID)

	if err := ix.Run(ctx); err != nil {
		logger.Error("indexer stopped", "error", err)
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}

	logger.Info("shutdown complete")
}
