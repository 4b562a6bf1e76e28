package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	CreateBrand(ctx context.Context, brand *models.Brand) error
	GetBrandByID(ctx context.Context, id uint) (*models.Brand, error)
	CreateColor(ctx context.Context, color *models.Color) error
	GetColorByID(ctx context.Context, id uint) (*models.Color, error)

	CreateAttributeVariant(ctx context.Context, attr *models.AttributeVariant) error
	GetAttributeVariantByVariant(ctx context.Context, variantID uint) (*models.AttributeVariant, error)
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *attributeRepository) GetBrandByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *attributeRepository) CreateColor(ctx context.Context, color *models.Color) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *attributeRepository) GetColorByID(ctx context.Context, id uint) (*models.Color, error) {
	var color models.Color
	if err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &color, nil
}

func (r *attributeRepository) CreateAttributeVariant(ctx context.Context, attr *models.AttributeVariant) error {
	return r.db.WithContext(ctx).Create(attr).Error
}

func (r *attributeRepository) GetAttributeVariantByVariant(ctx context.Context, variantID uint) (*models.AttributeVariant, error) {
	var attr models.AttributeVariant
	if err := r.db.WithContext(ctx).First(&attr, "variant_id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attr, nil
}
