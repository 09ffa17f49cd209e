package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the fuzzy catalog and knowledge-base retrieval paths
// used when no vector store is configured.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for knowledge entry full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_knowledge_entries_body_gin
		ON knowledge_entries USING gin(to_tsvector('english', title || ' ' || body))`)
	if err != nil {
		return fmt.Errorf("failed to create knowledge entry GIN index: %w", err)
	}

	// GIN index for product name/description full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_products_search_gin
		ON products USING gin(to_tsvector('english', name || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create product GIN index: %w", err)
	}

	return nil
}
