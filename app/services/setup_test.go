package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	logs     *observer.ObservedLogs
	taxonomy *TaxonomyService
	mappings *MappingService
	sizes    *SizeService
	catalog  *CatalogService
	storage  *StorageService
}

// newFixture wires every service against a fresh in-memory database. The pool
// is pinned to one connection so all queries see the same memory database.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), configs.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	svc, err := NewServices(db, "sqlite", logger)
	require.NoError(t, err)

	return &fixture{
		db:       db,
		logs:     logs,
		taxonomy: svc.Taxonomy,
		mappings: svc.Mappings,
		sizes:    svc.Sizes,
		catalog:  svc.Catalog,
		storage:  svc.Storage,
	}
}

func (f *fixture) category(t *testing.T, name string) uint {
	t.Helper()
	c, err := f.taxonomy.CreateCategory(context.Background(), TaxonomyInput{Name: name})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) subcategory(t *testing.T, name string) uint {
	t.Helper()
	s, err := f.taxonomy.CreateSubcategory(context.Background(), TaxonomyInput{Name: name})
	require.NoError(t, err)
	return s.ID
}
