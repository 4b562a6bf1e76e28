package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

type MappingRepositoryImpl interface {
	Create(ctx context.Context, mapping *models.Mapping) error
	GetByID(ctx context.Context, id uint) (*models.Mapping, error)
	GetByPair(ctx context.Context, categoryID, subcategoryID uint) (*models.Mapping, error)
	GetAll(ctx context.Context) ([]models.Mapping, error)
	Update(ctx context.Context, mapping *models.Mapping) error
	Reactivate(ctx context.Context, id uint) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	WithTx(tx *gorm.DB) MappingRepositoryImpl
}

type mappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) MappingRepositoryImpl {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) WithTx(tx *gorm.DB) MappingRepositoryImpl {
	return &mappingRepository{db: tx}
}

func (r *mappingRepository) Create(ctx context.Context, mapping *models.Mapping) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}

func (r *mappingRepository) GetByID(ctx context.Context, id uint) (*models.Mapping, error) {
	var mapping models.Mapping
	err := r.db.WithContext(ctx).First(&mapping, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *mappingRepository) GetByPair(ctx context.Context, categoryID, subcategoryID uint) (*models.Mapping, error) {
	var mapping models.Mapping
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND subcategory_id = ?", categoryID, subcategoryID).
		First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *mappingRepository) GetAll(ctx context.Context) ([]models.Mapping, error) {
	var mappings []models.Mapping
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) Update(ctx context.Context, mapping *models.Mapping) error {
	return r.db.WithContext(ctx).Save(mapping).Error
}

// Reactivate flips an Unavailable row back to Available. It affects zero rows
// when another writer already reactivated it.
func (r *mappingRepository) Reactivate(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Mapping{}).
		Where("id = ? AND status = ?", id, models.StatusUnavailable).
		Update("status", models.StatusAvailable)
	return res.RowsAffected, res.Error
}

func (r *mappingRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Mapping{}).
		Where("status = ?", models.StatusAvailable).
		Count(&count).Error
	return count, err
}

// Delete reports how many rows were removed so callers can tell a missing id
// from a real deletion.
func (r *mappingRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Mapping{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
