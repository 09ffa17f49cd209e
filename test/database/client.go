package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/pkg/database"
	"github.com/sokochat/sokochat/test/util"
)

// NewTestClient creates a migrated ent client on a per-test schema.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: uses a shared testcontainer started once
// per package. The schema is dropped when the test ends.
func NewTestClient(t *testing.T) *ent.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	return entClient
}

// NewTestDB is NewTestClient plus access to the underlying *sql.DB, for
// tests that exercise health checks or raw connections.
func NewTestDB(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
