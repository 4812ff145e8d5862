package storage

import (
	"context"

	"nearbee-scraper/models"
)

// ShopStore is the persistence collaborator the scrape pipeline writes to.
// FindByNaturalKey and Insert deliberately form a look-then-insert pair:
// there is no transactional upsert, so concurrent pipelines sharing one
// store can race and both insert the same natural key.
type ShopStore interface {
	// FindByNaturalKey reports whether a record with exactly this
	// (shopName, latitude, longitude) triple already exists.
	FindByNaturalKey(ctx context.Context, name string, lat, lng float64) (bool, error)

	// Insert persists one new record.
	Insert(ctx context.Context, record *models.ShopRecord) error

	// Search returns records whose shopName, address or category matches
	// the free-text query, case-insensitively.
	Search(ctx context.Context, query string) ([]*models.ShopRecord, error)

	Close(ctx context.Context) error
}

// SnapshotWriter is the interface for exporting a run's scraped records.
type SnapshotWriter interface {
	WriteSnapshot(records []*models.ShopRecord) error
	Close() error
}
