package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovementInput struct {
	VariantID    uint
	LocationID   uint
	ToLocationID *uint
	MovementType models.MovementType
	Quantity     int
	Note         string
}

// StorageService manages the zone, rack and location topology and records
// stock movements against it.
type StorageService struct {
	storageRepo repositories.StorageRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	logger      *zap.Logger
}

func NewStorageService(storageRepo repositories.StorageRepositoryImpl, productRepo repositories.ProductRepositoryImpl, logger *zap.Logger) *StorageService {
	return &StorageService{
		storageRepo: storageRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *StorageService) CreateZone(ctx context.Context, code, name string) (*models.Zone, error) {
	zone := &models.Zone{Code: strings.ToUpper(code), Name: name, Status: models.StatusAvailable}
	if err := s.storageRepo.CreateZone(ctx, zone); err != nil {
		return nil, fmt.Errorf("failed to create zone: %w", err)
	}
	return zone, nil
}

func (s *StorageService) CreateRack(ctx context.Context, zoneID uint, code string) (*models.Rack, error) {
	zone, err := s.storageRepo.GetZoneByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone: %w", err)
	}
	if zone == nil {
		return nil, notFound("zone", zoneID)
	}

	rack := &models.Rack{ZoneID: zoneID, Code: strings.ToUpper(code), Status: models.StatusAvailable}
	if err := s.storageRepo.CreateRack(ctx, rack); err != nil {
		return nil, fmt.Errorf("failed to create rack: %w", err)
	}
	return rack, nil
}

// CreateLocation builds the location code from its zone, rack and bin.
func (s *StorageService) CreateLocation(ctx context.Context, rackID uint, bin string) (*models.Location, error) {
	rack, err := s.storageRepo.GetRackByID(ctx, rackID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rack: %w", err)
	}
	if rack == nil {
		return nil, notFound("rack", rackID)
	}
	zone, err := s.storageRepo.GetZoneByID(ctx, rack.ZoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone: %w", err)
	}
	if zone == nil {
		return nil, notFound("zone", rack.ZoneID)
	}

	location := &models.Location{
		RackID: rackID,
		Code:   fmt.Sprintf("%s-%s-%s", zone.Code, rack.Code, strings.ToUpper(bin)),
		Status: models.StatusAvailable,
	}
	if err := s.storageRepo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *StorageService) Topology(ctx context.Context) ([]models.Zone, error) {
	return s.storageRepo.GetZonesWithRacks(ctx)
}

// RecordMovement stores a movement row. Balances are not computed here.
func (s *StorageService) RecordMovement(ctx context.Context, input MovementInput) (*models.StockMovement, error) {
	if !input.MovementType.Valid() {
		return nil, fmt.Errorf("%w: unknown movement type %q", ErrInvalidMovement, input.MovementType)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidMovement)
	}
	if input.MovementType == models.MovementTransfer {
		if input.ToLocationID == nil || *input.ToLocationID == input.LocationID {
			return nil, fmt.Errorf("%w: transfer needs a different destination location", ErrInvalidMovement)
		}
	} else if input.ToLocationID != nil {
		return nil, fmt.Errorf("%w: destination only applies to transfers", ErrInvalidMovement)
	}

	variant, err := s.productRepo.GetVariantByID(ctx, input.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variant: %w", err)
	}
	if variant == nil {
		return nil, notFound("variant", input.VariantID)
	}
	if err := s.requireLocation(ctx, input.LocationID); err != nil {
		return nil, err
	}
	if input.ToLocationID != nil {
		if err := s.requireLocation(ctx, *input.ToLocationID); err != nil {
			return nil, err
		}
	}

	movement := &models.StockMovement{
		Reference:    uuid.New().String(),
		VariantID:    input.VariantID,
		LocationID:   input.LocationID,
		ToLocationID: input.ToLocationID,
		MovementType: input.MovementType,
		Quantity:     input.Quantity,
		Note:         input.Note,
	}
	if err := s.storageRepo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record movement: %w", err)
	}
	s.logger.Info("stock movement recorded",
		zap.String("reference", movement.Reference),
		zap.String("type", string(movement.MovementType)),
		zap.Uint("variant_id", movement.VariantID),
		zap.Int("quantity", movement.Quantity),
	)
	return movement, nil
}

func (s *StorageService) requireLocation(ctx context.Context, id uint) error {
	location, err := s.storageRepo.GetLocationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load location: %w", err)
	}
	if location == nil {
		return notFound("location", id)
	}
	return nil
}

func (s *StorageService) MovementsOf(ctx context.Context, variantID uint, page, pageSize int) ([]models.StockMovement, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.storageRepo.GetMovementsByVariant(ctx, variantID, pageSize, (page-1)*pageSize)
}
