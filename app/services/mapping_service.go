package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MappingService struct {
	db              *gorm.DB
	categoryRepo    repositories.CategoryRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	mappingRepo     repositories.MappingRepositoryImpl
	logger          *zap.Logger
}

func NewMappingService(
	db *gorm.DB,
	categoryRepo repositories.CategoryRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	mappingRepo repositories.MappingRepositoryImpl,
	logger *zap.Logger,
) *MappingService {
	return &MappingService{
		db:              db,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		mappingRepo:     mappingRepo,
		logger:          logger,
	}
}

// MapCategoryToSubcategory checks both ends and the pair inside one
// transaction, then inserts. The unique index on the pair catches a
// concurrent insert that slips past the check, and an inactive row is
// reactivated with a conditional update so only one caller wins.
func (s *MappingService) MapCategoryToSubcategory(ctx context.Context, categoryID, subcategoryID uint) (*models.Mapping, error) {
	var mapping *models.Mapping

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.categoryRepo.WithTx(tx).GetByID(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to load category: %w", err)
		}
		if category == nil {
			return notFound("category", categoryID)
		}

		subcategory, err := s.subcategoryRepo.WithTx(tx).GetByID(ctx, subcategoryID)
		if err != nil {
			return fmt.Errorf("failed to load subcategory: %w", err)
		}
		if subcategory == nil {
			return notFound("subcategory", subcategoryID)
		}

		mappings := s.mappingRepo.WithTx(tx)
		existing, err := mappings.GetByPair(ctx, categoryID, subcategoryID)
		if err != nil {
			return fmt.Errorf("failed to check existing mapping: %w", err)
		}
		if existing != nil {
			if existing.IsActive() {
				return ErrDuplicateMapping
			}
			affected, err := mappings.Reactivate(ctx, existing.ID)
			if err != nil {
				return fmt.Errorf("failed to reactivate mapping: %w", err)
			}
			if affected == 0 {
				return ErrDuplicateMapping
			}
			existing.Status = models.StatusAvailable
			mapping = existing
			return nil
		}

		created := &models.Mapping{
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			Status:        models.StatusAvailable,
		}
		if err := mappings.Create(ctx, created); err != nil {
			return err
		}
		mapping = created
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateMapping
		}
		return nil, err
	}

	s.logger.Info("category mapped to subcategory",
		zap.Uint("mapping_id", mapping.ID),
		zap.Uint("category_id", categoryID),
		zap.Uint("subcategory_id", subcategoryID),
	)
	return mapping, nil
}

func (s *MappingService) SubcategoriesOf(ctx context.Context, categoryID uint) ([]models.Subcategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return nil, notFound("category", categoryID)
	}
	return s.subcategoryRepo.GetByCategory(ctx, categoryID)
}

func (s *MappingService) CategoriesOf(ctx context.Context, subcategoryID uint) ([]models.Category, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subcategory: %w", err)
	}
	if subcategory == nil {
		return nil, notFound("subcategory", subcategoryID)
	}
	return s.categoryRepo.GetBySubcategory(ctx, subcategoryID)
}

// IsMapped reports whether the pair has an active mapping.
func (s *MappingService) IsMapped(ctx context.Context, categoryID, subcategoryID uint) (bool, error) {
	existing, err := s.mappingRepo.GetByPair(ctx, categoryID, subcategoryID)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.IsActive(), nil
}

// Unmap deletes one mapping row. A missing id is logged and reported as
// removed=false rather than failing.
func (s *MappingService) Unmap(ctx context.Context, mappingID uint) (bool, error) {
	affected, err := s.mappingRepo.Delete(ctx, mappingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete mapping %d: %w", mappingID, err)
	}
	if affected == 0 {
		s.logger.Warn("unmap: mapping does not exist", zap.Uint("mapping_id", mappingID))
		return false, nil
	}
	s.logger.Info("mapping removed", zap.Uint("mapping_id", mappingID))
	return true, nil
}

func (s *MappingService) ListMappings(ctx context.Context) ([]models.Mapping, error) {
	return s.mappingRepo.GetAll(ctx)
}

// CountActive counts mappings that are currently Available.
func (s *MappingService) CountActive(ctx context.Context) (int64, error) {
	return s.mappingRepo.CountActive(ctx)
}

func (s *MappingService) SetMappingStatus(ctx context.Context, mappingID uint, status models.Status) (*models.Mapping, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	mapping, err := s.mappingRepo.GetByID(ctx, mappingID)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, notFound("mapping", mappingID)
	}
	mapping.Status = status
	if err := s.mappingRepo.Update(ctx, mapping); err != nil {
		return nil, fmt.Errorf("failed to update mapping %d: %w", mappingID, err)
	}
	return mapping, nil
}
