package services

import (
	"context"
	"fmt"
	"strings"

	"nearbee-scraper/models"
	"nearbee-scraper/storage"
	"nearbee-scraper/utils"
)

// SearchService surfaces stored shop records matching a free-text query.
type SearchService struct {
	store  storage.ShopStore
	logger *utils.Logger
}

// NewSearchService creates a SearchService over the given store.
func NewSearchService(store storage.ShopStore, logger *utils.Logger) *SearchService {
	return &SearchService{store: store, logger: logger}
}

// Find returns records whose name, address or category matches the query.
func (s *SearchService) Find(ctx context.Context, query string) ([]*models.ShopRecord, error) {
	records, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	s.logger.Info("[search] %d shops match %q", len(records), query)
	return records, nil
}

// Print renders the matching shops as human-readable cards.
func (s *SearchService) Print(records []*models.ShopRecord) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  NEARBY SHOPS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	if len(records) == 0 {
		fmt.Printf("  No shops found\n\n")
		return
	}

	for _, r := range records {
		fmt.Printf("  \033[1m%s\033[0m  \033[32m[%s]\033[0m\n", truncate(r.ShopName, 44), r.Category)
		fmt.Printf("  %s\n", thin)
		if r.Address != "" {
			fmt.Printf("  Address : %s\n", truncate(r.Address, 50))
		}
		if r.ContactNumber != "" {
			fmt.Printf("  Phone   : %s\n", r.ContactNumber)
		}
		fmt.Printf("  Coords  : %.4f, %.4f\n", r.Latitude, r.Longitude)
		fmt.Println()
	}

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
