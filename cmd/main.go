package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"lexchunk/api"
	"lexchunk/config"
	"lexchunk/extract"
	"lexchunk/patterns"
	"lexchunk/pipeline"
	"lexchunk/pkg/embedding"
	"lexchunk/pkg/ner"
	qdrantClient "lexchunk/pkg/qdrantdb"
	"lexchunk/pkg/segment"
	"lexchunk/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// =========
	// Config
	// =========
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Bolt store
	// =========
	st := &store.BoltStore{DBPath: cfg.BoltPath}
	if err := st.Init(); err != nil {
		log.Fatalf("Failed to open bolt store: %v", err)
	}
	defer st.Close()

	// =========
	// Qdrant vector
	// =========
	var index *qdrantClient.ChunkClient
	if cfg.QdrantHost != "" {
		index, err = qdrantClient.NewClient(cfg.QdrantHost, cfg.QdrantPort, uint64(cfg.EmbeddingDim))
		if err != nil {
			log.Fatalf("Failed to initialize qdrant: %v", err)
		}
		if err := index.CreateChunkCollection(context.Background()); err != nil {
			log.Fatalf("Failed to create chunk collection: %v", err)
		}
	} else {
		logger.Info("qdrant host not set, vector indexing disabled")
	}

	// =========
	// Embedding Client
	// =========
	embeddingClient := embedding.NewTEIClient(cfg.EmbeddingURL)

	// =========
	// Sentence segmenter
	// =========
	segmenter, err := segment.NewPunktSegmenter()
	if err != nil {
		log.Fatalf("Failed to initialize sentence segmenter: %v", err)
	}

	// =========
	// Entity recognizer
	// =========
	recognizer := ner.NewProseRecognizer()

	// =========
	// Legal pattern library
	// =========
	library := patterns.NewLegalLibrary()

	// =========
	// Token counter
	// =========
	var counter pipeline.TokenCounter
	if tk, err := pipeline.NewTiktokenCounter(); err != nil {
		logger.Warn("token counter unavailable, token counts disabled", zap.Error(err))
	} else {
		counter = tk
	}

	// =========
	// Pipeline
	// =========
	processor, err := pipeline.NewProcessor(segmenter, recognizer, embeddingClient, library, counter, cfg.Pipeline, logger)
	if err != nil {
		log.Fatalf("Failed to initialize processor: %v", err)
	}
	matcher := pipeline.NewMatcher(embeddingClient, logger)

	// =========
	// File extraction
	// =========
	registry := extract.NewRegistry()
	textExtractor := extract.NewTextExtractor()
	htmlExtractor := extract.NewHTMLExtractor(logger)
	registry.Register(".txt", textExtractor)
	registry.Register(".md", textExtractor)
	registry.Register(".html", htmlExtractor)
	registry.Register(".htm", htmlExtractor)

	// =========
	// API server
	// =========
	server := api.NewServer(processor, matcher, st, index, registry, cfg.AppPort, logger)
	log.Fatal(server.Start())
}
