package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

type StorageRepositoryImpl interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZoneByID(ctx context.Context, id uint) (*models.Zone, error)
	GetZonesWithRacks(ctx context.Context) ([]models.Zone, error)

	CreateRack(ctx context.Context, rack *models.Rack) error
	GetRackByID(ctx context.Context, id uint) (*models.Rack, error)

	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocationByID(ctx context.Context, id uint) (*models.Location, error)

	CreateMovement(ctx context.Context, movement *models.StockMovement) error
	GetMovementsByVariant(ctx context.Context, variantID uint, limit, offset int) ([]models.StockMovement, int64, error)
}

type storageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepositoryImpl {
	return &storageRepository{db: db}
}

func (r *storageRepository) CreateZone(ctx context.Context, zone *models.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *storageRepository) GetZoneByID(ctx context.Context, id uint) (*models.Zone, error) {
	var zone models.Zone
	if err := r.db.WithContext(ctx).First(&zone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

func (r *storageRepository) GetZonesWithRacks(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	err := r.db.WithContext(ctx).
		Preload("Racks.Locations").
		Preload("Racks").
		Order("code ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *storageRepository) CreateRack(ctx context.Context, rack *models.Rack) error {
	return r.db.WithContext(ctx).Create(rack).Error
}

func (r *storageRepository) GetRackByID(ctx context.Context, id uint) (*models.Rack, error) {
	var rack models.Rack
	if err := r.db.WithContext(ctx).First(&rack, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rack, nil
}

func (r *storageRepository) CreateLocation(ctx context.Context, location *models.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *storageRepository) GetLocationByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *storageRepository) CreateMovement(ctx context.Context, movement *models.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *storageRepository) GetMovementsByVariant(ctx context.Context, variantID uint, limit, offset int) ([]models.StockMovement, int64, error) {
	var movements []models.StockMovement
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.StockMovement{}).
		Where("variant_id = ?", variantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&movements).Error

	return movements, total, err
}
