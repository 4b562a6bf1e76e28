package services

import (
	"github.com/Rakhulsr/go-warehouse/app/repositories"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services groups the service layer so the router, the CLI and the seeders
// wire it the same way.
type Services struct {
	Taxonomy *TaxonomyService
	Mappings *MappingService
	Sizes    *SizeService
	Catalog  *CatalogService
	Storage  *StorageService
}

// NewServices builds every repository and service over db. driverName is the
// sqlx driver name used for the raw audit queries.
func NewServices(db *gorm.DB, driverName string, logger *zap.Logger) (*Services, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	subcategoryRepo := repositories.NewSubcategoryRepository(db)
	mappingRepo := repositories.NewMappingRepository(db)
	sizeRepo := repositories.NewSizeRepository(db)
	auditRepo := repositories.NewSizeAuditRepository(sqlx.NewDb(sqlDB, driverName))
	productRepo := repositories.NewProductRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	storageRepo := repositories.NewStorageRepository(db)

	taxonomy := NewTaxonomyService(categoryRepo, subcategoryRepo, logger)
	mappings := NewMappingService(db, categoryRepo, subcategoryRepo, mappingRepo, logger)

	return &Services{
		Taxonomy: taxonomy,
		Mappings: mappings,
		Sizes:    NewSizeService(sizeRepo, categoryRepo, auditRepo, logger),
		Catalog:  NewCatalogService(productRepo, attributeRepo, sizeRepo, taxonomy, mappings, logger),
		Storage:  NewStorageService(storageRepo, productRepo, logger),
	}, nil
}
