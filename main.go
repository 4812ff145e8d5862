package main

import (
	"context"
	"os"
	"strings"

	"nearbee-scraper/config"
	"nearbee-scraper/scraper/gmaps"
	"nearbee-scraper/services"
	"nearbee-scraper/storage"
	"nearbee-scraper/utils"
)

func main() {
	logger := utils.NewLogger()

	if len(os.Args) < 2 {
		logger.Error("Usage: nearbee-scraper <search query>")
		logger.Error(`Example: nearbee-scraper "restaurant near DD Nagar Gwalior"`)
		os.Exit(1)
	}
	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Config error: %v", err)
		os.Exit(1)
	}

	logger.Info("=== Nearbee shop scraper starting ===")
	logger.Info("Config — scroll iterations: %d | db: %s | collection: %s",
		cfg.ScrollIterations, cfg.DatabaseName, cfg.CollectionName)

	ctx := context.Background()

	store, err := storage.NewMongoStore(ctx, cfg.MongoURL, cfg.DatabaseName, cfg.CollectionName)
	if err != nil {
		logger.Error("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	scraper := gmaps.New(cfg, logger, store)
	inserted, err := scraper.Run(ctx, query)
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}

	if cfg.CSVOutputPath != "" && len(inserted) > 0 {
		csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
		if err != nil {
			logger.Error("Failed to create CSV writer: %v", err)
		} else {
			if err := csvWriter.WriteSnapshot(inserted); err != nil {
				logger.Error("CSV write failed: %v", err)
			} else {
				logger.Info("Run snapshot saved to %s", cfg.CSVOutputPath)
			}
			csvWriter.Close()
		}
	}

	search := services.NewSearchService(store, logger)
	matches, err := search.Find(ctx, query)
	if err != nil {
		logger.Error("Search failed: %v", err)
		os.Exit(1)
	}
	search.Print(matches)
}
