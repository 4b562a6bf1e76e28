package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductInput struct {
	Name          string
	Description   string
	CategoryID    uint
	SubcategoryID uint
	Image         string
}

type VariantInput struct {
	ProductID uint
	Sku       string
	Price     decimal.Decimal
}

type AttributeVariantInput struct {
	VariantID uint
	BrandID   uint
	ColorID   uint
	SizeID    uint
}

type CatalogService struct {
	productRepo   repositories.ProductRepositoryImpl
	attributeRepo repositories.AttributeRepositoryImpl
	sizeRepo      repositories.SizeRepositoryImpl
	taxonomy      *TaxonomyService
	mappings      *MappingService
	logger        *zap.Logger
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	attributeRepo repositories.AttributeRepositoryImpl,
	sizeRepo repositories.SizeRepositoryImpl,
	taxonomy *TaxonomyService,
	mappings *MappingService,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:   productRepo,
		attributeRepo: attributeRepo,
		sizeRepo:      sizeRepo,
		taxonomy:      taxonomy,
		mappings:      mappings,
		logger:        logger,
	}
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	brand := &models.Brand{Name: name, Status: models.StatusAvailable}
	if err := s.attributeRepo.CreateBrand(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return brand, nil
}

func (s *CatalogService) CreateColor(ctx context.Context, name, hexCode string) (*models.Color, error) {
	color := &models.Color{Name: name, HexCode: hexCode, Status: models.StatusAvailable}
	if err := s.attributeRepo.CreateColor(ctx, color); err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return color, nil
}

// CreateProduct only accepts a category/subcategory pair that is actively mapped.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if _, err := s.taxonomy.GetCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.taxonomy.GetSubcategory(ctx, input.SubcategoryID); err != nil {
		return nil, err
	}
	mapped, err := s.mappings.IsMapped(ctx, input.CategoryID, input.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check mapping: %w", err)
	}
	if !mapped {
		return nil, fmt.Errorf("%w: category %d, subcategory %d", ErrPairNotMapped, input.CategoryID, input.SubcategoryID)
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Image:         input.Image,
		Status:        models.StatusAvailable,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("product", id)
	}
	return product, nil
}

// ListProducts pages through products, optionally narrowed by a search
// keyword or a subcategory. page is 1-based.
func (s *CatalogService) ListProducts(ctx context.Context, keyword string, subcategoryID uint, page, pageSize int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	switch {
	case keyword != "":
		return s.productRepo.SearchProductsPaginated(ctx, keyword, pageSize, offset)
	case subcategoryID != 0:
		return s.productRepo.GetBySubcategoryPaginated(ctx, subcategoryID, pageSize, offset)
	default:
		return s.productRepo.GetPaginated(ctx, pageSize, offset)
	}
}

func (s *CatalogService) CreateVariant(ctx context.Context, input VariantInput) (*models.ProductVariant, error) {
	if _, err := s.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}
	existing, err := s.productRepo.GetVariantBySku(ctx, input.Sku)
	if err != nil {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSku, input.Sku)
	}

	variant := &models.ProductVariant{
		ProductID: input.ProductID,
		Sku:       input.Sku,
		Price:     input.Price,
		Status:    models.StatusAvailable,
	}
	if err := s.productRepo.CreateVariant(ctx, variant); err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSku, input.Sku)
		}
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}
	return variant, nil
}

// CreateAttributeVariant checks every reference before inserting; the first
// missing one is reported. A variant that already has attributes is rejected
// only once all references resolve.
func (s *CatalogService) CreateAttributeVariant(ctx context.Context, input AttributeVariantInput) (*models.AttributeVariant, error) {
	variant, err := s.productRepo.GetVariantByID(ctx, input.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load variant: %w", err)
	}
	if variant == nil {
		return nil, notFound("variant", input.VariantID)
	}

	brand, err := s.attributeRepo.GetBrandByID(ctx, input.BrandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand: %w", err)
	}
	if brand == nil {
		return nil, notFound("brand", input.BrandID)
	}

	color, err := s.attributeRepo.GetColorByID(ctx, input.ColorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load color: %w", err)
	}
	if color == nil {
		return nil, notFound("color", input.ColorID)
	}

	size, err := s.sizeRepo.GetSizeTypeByID(ctx, input.SizeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load size type: %w", err)
	}
	if size == nil {
		return nil, notFound("size type", input.SizeID)
	}

	existing, err := s.attributeRepo.GetAttributeVariantByVariant(ctx, input.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check attributes: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: variant %d", ErrVariantHasAttributes, input.VariantID)
	}

	attr := &models.AttributeVariant{
		VariantID: input.VariantID,
		BrandID:   input.BrandID,
		ColorID:   input.ColorID,
		SizeID:    input.SizeID,
	}
	if err := s.attributeRepo.CreateAttributeVariant(ctx, attr); err != nil {
		return nil, fmt.Errorf("failed to create attribute variant: %w", err)
	}
	s.logger.Info("attribute variant created",
		zap.Uint("variant_id", input.VariantID),
		zap.Uint("brand_id", input.BrandID),
		zap.Uint("color_id", input.ColorID),
		zap.Uint("size_id", input.SizeID),
	)
	return attr, nil
}
