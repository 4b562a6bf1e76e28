package migrations

import (
	"github.com/Rakhulsr/go-warehouse/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{}, &models.Subcategory{}, &models.Mapping{},
		&models.Gender{}, &models.SizeClothing{}, &models.SizeShoes{}, &models.SizeType{},
		&models.Brand{}, &models.Color{}, &models.Product{}, &models.ProductVariant{}, &models.AttributeVariant{},
		&models.Zone{}, &models.Rack{}, &models.Location{}, &models.StockMovement{},
	)
}
