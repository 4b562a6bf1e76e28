package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-warehouse/app/helpers"
	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"go.uber.org/zap"
)

type TaxonomyInput struct {
	Name   string
	Image  string
	Status models.Status
}

// TaxonomyService manages the category and subcategory records themselves.
// Pairings between them go through MappingService.
type TaxonomyService struct {
	categoryRepo    repositories.CategoryRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	logger          *zap.Logger
}

func NewTaxonomyService(
	categoryRepo repositories.CategoryRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	logger *zap.Logger,
) *TaxonomyService {
	return &TaxonomyService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		logger:          logger,
	}
}

// statusOrDefault falls back to Available for empty or unknown values.
// Handlers reject unknown values before they get here.
func statusOrDefault(s models.Status) models.Status {
	parsed, err := models.ParseStatus(string(s))
	if err != nil {
		return models.StatusAvailable
	}
	return parsed
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, input TaxonomyInput) (*models.Category, error) {
	category := &models.Category{
		Name:   input.Name,
		Slug:   helpers.GenerateSlug(input.Name),
		Image:  input.Image,
		Status: statusOrDefault(input.Status),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uint, input TaxonomyInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("category", id)
	}

	if category.Name != input.Name {
		category.Slug = helpers.GenerateSlug(input.Name)
	}
	category.Name = input.Name
	category.Image = input.Image
	category.Status = statusOrDefault(input.Status)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return category, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return notFound("category", id)
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	s.logger.Info("category deleted", zap.Uint("category_id", id))
	return nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("category", id)
	}
	return category, nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *TaxonomyService) CreateSubcategory(ctx context.Context, input TaxonomyInput) (*models.Subcategory, error) {
	subcategory := &models.Subcategory{
		Name:   input.Name,
		Slug:   helpers.GenerateSlug(input.Name),
		Image:  input.Image,
		Status: statusOrDefault(input.Status),
	}
	if err := s.subcategoryRepo.Create(ctx, subcategory); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return subcategory, nil
}

func (s *TaxonomyService) UpdateSubcategory(ctx context.Context, id uint, input TaxonomyInput) (*models.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, notFound("subcategory", id)
	}

	if subcategory.Name != input.Name {
		subcategory.Slug = helpers.GenerateSlug(input.Name)
	}
	subcategory.Name = input.Name
	subcategory.Image = input.Image
	subcategory.Status = statusOrDefault(input.Status)

	if err := s.subcategoryRepo.Update(ctx, subcategory); err != nil {
		return nil, fmt.Errorf("failed to update subcategory %d: %w", id, err)
	}
	return subcategory, nil
}

func (s *TaxonomyService) DeleteSubcategory(ctx context.Context, id uint) error {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return notFound("subcategory", id)
	}
	if err := s.subcategoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subcategory %d: %w", id, err)
	}
	s.logger.Info("subcategory deleted", zap.Uint("subcategory_id", id))
	return nil
}

func (s *TaxonomyService) GetSubcategory(ctx context.Context, id uint) (*models.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, notFound("subcategory", id)
	}
	return subcategory, nil
}

func (s *TaxonomyService) ListSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	return s.subcategoryRepo.GetAll(ctx)
}
