package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storelab/catalog-api/database"
)

// newTestDB opens an isolated in-memory store per test, schema included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
