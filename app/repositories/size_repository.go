package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

type SizeRepositoryImpl interface {
	CreateGender(ctx context.Context, gender *models.Gender) error
	GetGenderByID(ctx context.Context, id uint) (*models.Gender, error)
	GetGenders(ctx context.Context) ([]models.Gender, error)

	CreateClothing(ctx context.Context, size *models.SizeClothing) error
	GetClothingByID(ctx context.Context, id uint) (*models.SizeClothing, error)
	DeleteClothing(ctx context.Context, id uint) error

	CreateShoes(ctx context.Context, size *models.SizeShoes) error
	GetShoesByID(ctx context.Context, id uint) (*models.SizeShoes, error)
	DeleteShoes(ctx context.Context, id uint) error

	CreateSizeType(ctx context.Context, sizeType *models.SizeType) error
	UpdateSizeType(ctx context.Context, sizeType *models.SizeType) error
	GetSizeTypeByID(ctx context.Context, id uint) (*models.SizeType, error)
	GetSizeTypesByCategory(ctx context.Context, categoryID uint) ([]models.SizeType, error)
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepositoryImpl {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) CreateGender(ctx context.Context, gender *models.Gender) error {
	return r.db.WithContext(ctx).Create(gender).Error
}

func (r *sizeRepository) GetGenderByID(ctx context.Context, id uint) (*models.Gender, error) {
	var gender models.Gender
	err := r.db.WithContext(ctx).First(&gender, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gender, nil
}

func (r *sizeRepository) GetGenders(ctx context.Context) ([]models.Gender, error) {
	var genders []models.Gender
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&genders).Error; err != nil {
		return nil, err
	}
	return genders, nil
}

func (r *sizeRepository) CreateClothing(ctx context.Context, size *models.SizeClothing) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepository) GetClothingByID(ctx context.Context, id uint) (*models.SizeClothing, error) {
	var size models.SizeClothing
	err := r.db.WithContext(ctx).Preload("Gender").First(&size, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) DeleteClothing(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SizeClothing{}, "id = ?", id).Error
}

func (r *sizeRepository) CreateShoes(ctx context.Context, size *models.SizeShoes) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepository) GetShoesByID(ctx context.Context, id uint) (*models.SizeShoes, error) {
	var size models.SizeShoes
	err := r.db.WithContext(ctx).Preload("Gender").First(&size, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) DeleteShoes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SizeShoes{}, "id = ?", id).Error
}

func (r *sizeRepository) CreateSizeType(ctx context.Context, sizeType *models.SizeType) error {
	return r.db.WithContext(ctx).Create(sizeType).Error
}

// UpdateSizeType writes both foreign keys explicitly so switching a size type
// from clothing to shoes clears the old column.
func (r *sizeRepository) UpdateSizeType(ctx context.Context, sizeType *models.SizeType) error {
	return r.db.WithContext(ctx).
		Model(sizeType).
		Select("ClothingSizeID", "ShoeSizeID", "CategoryID", "Status", "UpdatedAt").
		Updates(sizeType).Error
}

func (r *sizeRepository) GetSizeTypeByID(ctx context.Context, id uint) (*models.SizeType, error) {
	var sizeType models.SizeType
	err := r.db.WithContext(ctx).First(&sizeType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sizeType, nil
}

func (r *sizeRepository) GetSizeTypesByCategory(ctx context.Context, categoryID uint) ([]models.SizeType, error) {
	var sizeTypes []models.SizeType
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&sizeTypes).Error
	if err != nil {
		return nil, err
	}
	return sizeTypes, nil
}
