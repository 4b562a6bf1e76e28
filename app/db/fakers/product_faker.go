package fakers

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type TaxonomySeed struct {
	Category      string
	Subcategories []string
}

type SizeSeed struct {
	Gender   string
	Clothing []string
	Shoes    map[string]string
}

type ProductSeed struct {
	Name        string
	Description string
	Category    string
	Subcategory string
	Variants    []VariantSeed
}

type VariantSeed struct {
	Sku   string
	Price decimal.Decimal
}

func TaxonomyFaker() []TaxonomySeed {
	return []TaxonomySeed{
		{Category: "Men", Subcategories: []string{"Shirts", "Trousers", "Shoes"}},
		{Category: "Women", Subcategories: []string{"Dresses", "Shoes", "Bags"}},
		{Category: "Kids", Subcategories: []string{"Shirts", "Shoes"}},
	}
}

// SizeFaker returns clothing sizes and shoe sizes per gender. Shoe values map
// to the foot length in centimetres.
func SizeFaker() []SizeSeed {
	return []SizeSeed{
		{
			Gender:   "Male",
			Clothing: []string{"S", "M", "L", "XL"},
			Shoes:    map[string]string{"41": "26.0", "42": "26.5", "43": "27.5"},
		},
		{
			Gender:   "Female",
			Clothing: []string{"XS", "S", "M", "L"},
			Shoes:    map[string]string{"37": "23.5", "38": "24.0", "39": "25.0"},
		},
	}
}

// ProductFaker builds count products per mapped pair in taxonomy. Output is
// stable for a given seed so repeated runs produce the same SKUs.
func ProductFaker(seed int64, taxonomy []TaxonomySeed, count int) []ProductSeed {
	rng := rand.New(rand.NewSource(seed))
	adjectives := []string{"Classic", "Everyday", "Slim", "Relaxed", "Premium", "Urban"}

	var products []ProductSeed
	for _, t := range taxonomy {
		for _, sub := range t.Subcategories {
			for i := 0; i < count; i++ {
				name := fmt.Sprintf("%s %s %s %d", adjectives[rng.Intn(len(adjectives))], t.Category, strings.TrimSuffix(sub, "s"), i+1)
				base := strings.ToUpper(slug.Make(name))

				variants := make([]VariantSeed, rng.Intn(3)+1)
				for v := range variants {
					variants[v] = VariantSeed{
						Sku:   fmt.Sprintf("%s-V%d", base, v+1),
						Price: decimal.NewFromFloat(fakePrice(rng)).Round(0),
					}
				}

				products = append(products, ProductSeed{
					Name:        name,
					Description: fmt.Sprintf("%s from the %s %s range.", name, t.Category, strings.ToLower(sub)),
					Category:    t.Category,
					Subcategory: sub,
					Variants:    variants,
				})
			}
		}
	}
	return products
}

func fakePrice(rng *rand.Rand) float64 {
	return precision(50000+rng.Float64()*math.Pow10(rng.Intn(3)+4), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
