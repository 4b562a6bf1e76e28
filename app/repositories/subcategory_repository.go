package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

type SubcategoryRepositoryImpl interface {
	Create(ctx context.Context, subcategory *models.Subcategory) error
	GetByID(ctx context.Context, id uint) (*models.Subcategory, error)
	GetAll(ctx context.Context) ([]models.Subcategory, error)
	Update(ctx context.Context, subcategory *models.Subcategory) error
	Delete(ctx context.Context, id uint) error
	GetByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error)
	WithTx(tx *gorm.DB) SubcategoryRepositoryImpl
}

type subcategoryRepository struct {
	db *gorm.DB
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepositoryImpl {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) WithTx(tx *gorm.DB) SubcategoryRepositoryImpl {
	return &subcategoryRepository{db: tx}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) GetAll(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *subcategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subcategory_id = ?", id).Delete(&models.Mapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Subcategory{}, "id = ?", id).Error
	})
}

func (r *subcategoryRepository) GetByCategory(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Select("subcategories.*").
		Joins("JOIN mappings m ON m.subcategory_id = subcategories.id").
		Where("m.category_id = ? AND m.status = ?", categoryID, models.StatusAvailable).
		Order("m.id ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}
