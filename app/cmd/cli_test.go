package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func memoryOpener(t *testing.T) (Opener, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), configs.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return func() (*gorm.DB, error) { return db, nil }, db
}

func TestCliMigrateSeedAudit(t *testing.T) {
	open, db := memoryOpener(t)
	var out bytes.Buffer
	run := func(args ...string) error {
		return NewCli(open, "sqlite", &out, zap.NewNop()).Run(context.Background(), append([]string{"warehouse"}, args...))
	}

	require.NoError(t, run("migrate"))
	assert.True(t, db.Migrator().HasTable(&models.SizeType{}))

	require.NoError(t, run("seed", "--seed", "3"))
	assert.Contains(t, out.String(), "seeded 3 categories")

	out.Reset()
	require.NoError(t, run("audit-sizes"))
	assert.Contains(t, out.String(), "all size types reference exactly one size")

	var category models.Category
	require.NoError(t, db.First(&category).Error)
	broken := &models.SizeType{CategoryID: category.ID, Status: models.StatusAvailable}
	require.NoError(t, db.Create(broken).Error)

	out.Reset()
	require.NoError(t, run("audit-sizes"))
	assert.Contains(t, out.String(), "references=neither")

	err := run("audit-sizes", "--fail")
	assert.Error(t, err)
}
