package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"go.uber.org/zap"
)

// ResolvedSize is the read-time view of a SizeType. Any field may be nil when
// the referenced definition is gone or the stored row is in an illegal state.
type ResolvedSize struct {
	SizeTypeID uint             `json:"size_type_id"`
	CategoryID uint             `json:"category_id"`
	Value      *string          `json:"size_value"`
	Gender     *models.Gender   `json:"gender"`
	SizeKind   *models.SizeKind `json:"kind"`
}

func (r ResolvedSize) SizeValue() *string { return r.Value }

func (r ResolvedSize) Kind() *models.SizeKind { return r.SizeKind }

func (r ResolvedSize) GenderName() *string {
	if r.Gender == nil {
		return nil
	}
	name := r.Gender.Name
	return &name
}

type SizeService struct {
	sizeRepo     repositories.SizeRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	auditRepo    repositories.SizeAuditRepositoryImpl
	logger       *zap.Logger
}

func NewSizeService(
	sizeRepo repositories.SizeRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	auditRepo repositories.SizeAuditRepositoryImpl,
	logger *zap.Logger,
) *SizeService {
	return &SizeService{
		sizeRepo:     sizeRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

func (s *SizeService) CreateGender(ctx context.Context, name string) (*models.Gender, error) {
	gender := &models.Gender{Name: name, Status: models.StatusAvailable}
	if err := s.sizeRepo.CreateGender(ctx, gender); err != nil {
		return nil, fmt.Errorf("failed to create gender: %w", err)
	}
	return gender, nil
}

func (s *SizeService) ListGenders(ctx context.Context) ([]models.Gender, error) {
	return s.sizeRepo.GetGenders(ctx)
}

func (s *SizeService) CreateClothingSize(ctx context.Context, value string, genderID uint) (*models.SizeClothing, error) {
	if err := s.requireGender(ctx, genderID); err != nil {
		return nil, err
	}
	size := &models.SizeClothing{SizeValue: value, GenderID: genderID, Status: models.StatusAvailable}
	if err := s.sizeRepo.CreateClothing(ctx, size); err != nil {
		return nil, fmt.Errorf("failed to create clothing size: %w", err)
	}
	return size, nil
}

func (s *SizeService) CreateShoeSize(ctx context.Context, value string, genderID uint, measurements map[string]string) (*models.SizeShoes, error) {
	if err := s.requireGender(ctx, genderID); err != nil {
		return nil, err
	}
	size := &models.SizeShoes{
		SizeValue:    value,
		GenderID:     genderID,
		Measurements: measurements,
		Status:       models.StatusAvailable,
	}
	if err := s.sizeRepo.CreateShoes(ctx, size); err != nil {
		return nil, fmt.Errorf("failed to create shoe size: %w", err)
	}
	return size, nil
}

func (s *SizeService) DeleteClothingSize(ctx context.Context, id uint) error {
	return s.sizeRepo.DeleteClothing(ctx, id)
}

func (s *SizeService) DeleteShoeSize(ctx context.Context, id uint) error {
	return s.sizeRepo.DeleteShoes(ctx, id)
}

func (s *SizeService) requireGender(ctx context.Context, genderID uint) error {
	gender, err := s.sizeRepo.GetGenderByID(ctx, genderID)
	if err != nil {
		return fmt.Errorf("failed to load gender: %w", err)
	}
	if gender == nil {
		return notFound("gender", genderID)
	}
	return nil
}

// ValidateSizeType is the write-time gate: exactly one size reference, and
// both the referenced definition and the category must exist.
func (s *SizeService) ValidateSizeType(ctx context.Context, sizeType *models.SizeType) error {
	ref, ok := sizeType.Ref()
	if !ok {
		return ErrInvalidSizeTypeState
	}

	category, err := s.categoryRepo.GetByID(ctx, sizeType.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return notFound("category", sizeType.CategoryID)
	}

	switch r := ref.(type) {
	case models.ClothingSizeRef:
		size, err := s.sizeRepo.GetClothingByID(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("failed to load clothing size: %w", err)
		}
		if size == nil {
			return notFound("clothing size", r.ID)
		}
	case models.ShoeSizeRef:
		size, err := s.sizeRepo.GetShoesByID(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("failed to load shoe size: %w", err)
		}
		if size == nil {
			return notFound("shoe size", r.ID)
		}
	}
	return nil
}

func (s *SizeService) CreateSizeType(ctx context.Context, sizeType *models.SizeType) (*models.SizeType, error) {
	if err := s.ValidateSizeType(ctx, sizeType); err != nil {
		return nil, err
	}
	if sizeType.Status == "" {
		sizeType.Status = models.StatusAvailable
	}
	if err := s.sizeRepo.CreateSizeType(ctx, sizeType); err != nil {
		return nil, fmt.Errorf("failed to create size type: %w", err)
	}
	return sizeType, nil
}

// UpdateSizeType points an existing size type at a new definition.
func (s *SizeService) UpdateSizeType(ctx context.Context, id uint, categoryID uint, ref models.SizeRef, status models.Status) (*models.SizeType, error) {
	sizeType, err := s.sizeRepo.GetSizeTypeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load size type: %w", err)
	}
	if sizeType == nil {
		return nil, notFound("size type", id)
	}

	sizeType.CategoryID = categoryID
	sizeType.SetRef(ref)
	if status != "" {
		sizeType.Status = status
	}
	if err := s.ValidateSizeType(ctx, sizeType); err != nil {
		return nil, err
	}
	if err := s.sizeRepo.UpdateSizeType(ctx, sizeType); err != nil {
		return nil, fmt.Errorf("failed to update size type %d: %w", id, err)
	}
	return sizeType, nil
}

func (s *SizeService) GetSizeType(ctx context.Context, id uint) (*models.SizeType, error) {
	sizeType, err := s.sizeRepo.GetSizeTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sizeType == nil {
		return nil, notFound("size type", id)
	}
	return sizeType, nil
}

// Resolve derives value, gender and kind from whichever size reference is
// set. It never fails: missing definitions and illegal stored rows resolve
// to nil fields, and the illegal case is logged for auditing.
func (s *SizeService) Resolve(ctx context.Context, sizeType *models.SizeType) ResolvedSize {
	resolved := ResolvedSize{SizeTypeID: sizeType.ID, CategoryID: sizeType.CategoryID}

	ref, ok := sizeType.Ref()
	if !ok {
		s.logger.Warn("size type in illegal state",
			zap.Uint("size_type_id", sizeType.ID),
			zap.Bool("clothing_set", sizeType.ClothingSizeID != nil),
			zap.Bool("shoes_set", sizeType.ShoeSizeID != nil),
		)
		return resolved
	}

	kind := ref.Kind()
	resolved.SizeKind = &kind

	switch r := ref.(type) {
	case models.ClothingSizeRef:
		size, err := s.sizeRepo.GetClothingByID(ctx, r.ID)
		if err != nil {
			s.logger.Error("failed to load clothing size", zap.Uint("size_id", r.ID), zap.Error(err))
			return resolved
		}
		if size != nil {
			value := size.SizeValue
			resolved.Value = &value
			resolved.Gender = size.Gender
		}
	case models.ShoeSizeRef:
		size, err := s.sizeRepo.GetShoesByID(ctx, r.ID)
		if err != nil {
			s.logger.Error("failed to load shoe size", zap.Uint("size_id", r.ID), zap.Error(err))
			return resolved
		}
		if size != nil {
			value := size.SizeValue
			resolved.Value = &value
			resolved.Gender = size.Gender
		}
	}
	return resolved
}

func (s *SizeService) ResolveByID(ctx context.Context, id uint) (ResolvedSize, error) {
	sizeType, err := s.GetSizeType(ctx, id)
	if err != nil {
		return ResolvedSize{}, err
	}
	return s.Resolve(ctx, sizeType), nil
}

func (s *SizeService) ResolveByCategory(ctx context.Context, categoryID uint) ([]ResolvedSize, error) {
	sizeTypes, err := s.sizeRepo.GetSizeTypesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	resolved := make([]ResolvedSize, 0, len(sizeTypes))
	for i := range sizeTypes {
		resolved = append(resolved, s.Resolve(ctx, &sizeTypes[i]))
	}
	return resolved, nil
}

// AuditSizeTypes lists stored size types that violate the one-reference rule.
func (s *SizeService) AuditSizeTypes(ctx context.Context) ([]repositories.InvalidSizeTypeRow, error) {
	rows, err := s.auditRepo.FindInvalidSizeTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to audit size types: %w", err)
	}
	for _, row := range rows {
		s.logger.Warn("size type flagged by audit",
			zap.Uint("size_type_id", row.ID),
			zap.Bool("both_set", row.BothSet()),
		)
	}
	return rows, nil
}

// CountInvalidSizeTypes reports how many stored size types the audit would
// flag, without logging each one.
func (s *SizeService) CountInvalidSizeTypes(ctx context.Context) (int64, error) {
	count, err := s.auditRepo.CountInvalidSizeTypes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count invalid size types: %w", err)
	}
	return count, nil
}
