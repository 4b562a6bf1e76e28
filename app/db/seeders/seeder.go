package seeders

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-warehouse/app/db/fakers"
	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"go.uber.org/zap"
)

type Summary struct {
	Categories     int
	Subcategories  int
	Mappings       int
	SizeTypes      int
	Products       int
	Variants       int
	StockMovements int
}

// DBSeed fills an empty database with demo data through the service layer so
// every record passes the same validation as API input. A database that
// already has categories is left untouched.
func DBSeed(ctx context.Context, svc *services.Services, seed int64, logger *zap.Logger) (*Summary, error) {
	existing, err := svc.Taxonomy.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		logger.Info("database already seeded, skipping", zap.Int("categories", len(existing)))
		return &Summary{}, nil
	}

	var sum Summary
	taxonomy := fakers.TaxonomyFaker()

	categoryIDs := map[string]uint{}
	subcategoryIDs := map[string]uint{}
	for _, t := range taxonomy {
		category, err := svc.Taxonomy.CreateCategory(ctx, services.TaxonomyInput{Name: t.Category})
		if err != nil {
			return nil, err
		}
		categoryIDs[t.Category] = category.ID
		sum.Categories++

		for _, name := range t.Subcategories {
			id, ok := subcategoryIDs[name]
			if !ok {
				sub, err := svc.Taxonomy.CreateSubcategory(ctx, services.TaxonomyInput{Name: name})
				if err != nil {
					return nil, err
				}
				id = sub.ID
				subcategoryIDs[name] = id
				sum.Subcategories++
			}
			if _, err := svc.Mappings.MapCategoryToSubcategory(ctx, category.ID, id); err != nil {
				return nil, err
			}
			sum.Mappings++
		}
	}

	// Every category gets one size type per clothing and shoe size.
	sizeTypesByCategory := map[uint][]uint{}
	for _, s := range fakers.SizeFaker() {
		gender, err := svc.Sizes.CreateGender(ctx, s.Gender)
		if err != nil {
			return nil, err
		}

		var refs []models.SizeRef
		for _, value := range s.Clothing {
			size, err := svc.Sizes.CreateClothingSize(ctx, value, gender.ID)
			if err != nil {
				return nil, err
			}
			refs = append(refs, models.ClothingSizeRef{ID: size.ID})
		}
		for value, length := range s.Shoes {
			size, err := svc.Sizes.CreateShoeSize(ctx, value, gender.ID, map[string]string{"length_cm": length})
			if err != nil {
				return nil, err
			}
			refs = append(refs, models.ShoeSizeRef{ID: size.ID})
		}

		for _, t := range taxonomy {
			categoryID := categoryIDs[t.Category]
			for _, ref := range refs {
				st, err := svc.Sizes.CreateSizeType(ctx, models.NewSizeType(categoryID, ref))
				if err != nil {
					return nil, err
				}
				sizeTypesByCategory[categoryID] = append(sizeTypesByCategory[categoryID], st.ID)
				sum.SizeTypes++
			}
		}
	}

	brand, err := svc.Catalog.CreateBrand(ctx, "Gommerce Basics")
	if err != nil {
		return nil, err
	}
	color, err := svc.Catalog.CreateColor(ctx, "Black", "#000000")
	if err != nil {
		return nil, err
	}

	zone, err := svc.Storage.CreateZone(ctx, "A", "Apparel")
	if err != nil {
		return nil, err
	}
	rack, err := svc.Storage.CreateRack(ctx, zone.ID, "R01")
	if err != nil {
		return nil, err
	}
	var locations []*models.Location
	for bin := 1; bin <= 3; bin++ {
		location, err := svc.Storage.CreateLocation(ctx, rack.ID, fmt.Sprintf("%02d", bin))
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	for i, p := range fakers.ProductFaker(seed, taxonomy, 2) {
		categoryID := categoryIDs[p.Category]
		product, err := svc.Catalog.CreateProduct(ctx, services.ProductInput{
			Name:          p.Name,
			Description:   p.Description,
			CategoryID:    categoryID,
			SubcategoryID: subcategoryIDs[p.Subcategory],
		})
		if err != nil {
			return nil, err
		}
		sum.Products++

		sizes := sizeTypesByCategory[categoryID]
		for j, v := range p.Variants {
			variant, err := svc.Catalog.CreateVariant(ctx, services.VariantInput{
				ProductID: product.ID,
				Sku:       v.Sku,
				Price:     v.Price,
			})
			if err != nil {
				return nil, err
			}
			sum.Variants++

			if _, err := svc.Catalog.CreateAttributeVariant(ctx, services.AttributeVariantInput{
				VariantID: variant.ID,
				BrandID:   brand.ID,
				ColorID:   color.ID,
				SizeID:    sizes[(i+j)%len(sizes)],
			}); err != nil {
				return nil, err
			}

			if _, err := svc.Storage.RecordMovement(ctx, services.MovementInput{
				VariantID:    variant.ID,
				LocationID:   locations[(i+j)%len(locations)].ID,
				MovementType: models.MovementIn,
				Quantity:     10,
				Note:         "initial stock",
			}); err != nil {
				return nil, err
			}
			sum.StockMovements++
		}
	}

	logger.Info("database seeded",
		zap.Int("categories", sum.Categories),
		zap.Int("subcategories", sum.Subcategories),
		zap.Int("mappings", sum.Mappings),
		zap.Int("size_types", sum.SizeTypes),
		zap.Int("products", sum.Products),
		zap.Int("variants", sum.Variants),
	)
	return &sum, nil
}
