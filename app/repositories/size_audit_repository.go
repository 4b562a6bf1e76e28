package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// InvalidSizeTypeRow is a size_types row that has both or neither size column set.
type InvalidSizeTypeRow struct {
	ID             uint          `db:"id"`
	CategoryID     uint          `db:"category_id"`
	ClothingSizeID sql.NullInt64 `db:"clothing_size_id"`
	ShoeSizeID     sql.NullInt64 `db:"shoe_size_id"`
}

func (r InvalidSizeTypeRow) BothSet() bool {
	return r.ClothingSizeID.Valid && r.ShoeSizeID.Valid
}

type SizeAuditRepositoryImpl interface {
	FindInvalidSizeTypes(ctx context.Context) ([]InvalidSizeTypeRow, error)
	CountInvalidSizeTypes(ctx context.Context) (int64, error)
}

type sizeAuditRepository struct {
	db *sqlx.DB
}

func NewSizeAuditRepository(db *sqlx.DB) SizeAuditRepositoryImpl {
	return &sizeAuditRepository{db: db}
}

const invalidSizeTypeFilter = `
        (clothing_size_id IS NULL AND shoe_size_id IS NULL)
        OR (clothing_size_id IS NOT NULL AND shoe_size_id IS NOT NULL)`

func (r *sizeAuditRepository) FindInvalidSizeTypes(ctx context.Context) ([]InvalidSizeTypeRow, error) {
	query := `
        SELECT id, category_id, clothing_size_id, shoe_size_id
        FROM size_types
        WHERE ` + invalidSizeTypeFilter + `
        ORDER BY id ASC
    `
	rows := []InvalidSizeTypeRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *sizeAuditRepository) CountInvalidSizeTypes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM size_types WHERE `+invalidSizeTypeFilter)
	return count, err
}
