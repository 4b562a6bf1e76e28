package admin

import (
	"fmt"
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/helpers"
	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"github.com/shopspring/decimal"
)

type ProductForm struct {
	Name          string `json:"name" validate:"required,min=3,max=100"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	CategoryID    uint   `json:"category_id" validate:"required"`
	SubcategoryID uint   `json:"subcategory_id" validate:"required"`
	Image         string `json:"image" validate:"omitempty,max=255"`
}

type VariantForm struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Sku       string `json:"sku" validate:"required,min=3,max=50"`
	Price     string `json:"price" validate:"required,numeric"`
}

type AttributeVariantForm struct {
	VariantID uint `json:"variant_id" validate:"required"`
	BrandID   uint `json:"brand_id" validate:"required"`
	ColorID   uint `json:"color_id" validate:"required"`
	SizeID    uint `json:"size_id" validate:"required"`
}

type BrandForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ColorForm struct {
	Name    string `json:"name" validate:"required,max=50"`
	HexCode string `json:"hex_code" validate:"omitempty,hexcolor"`
}

type VariantResponse struct {
	*models.ProductVariant
	PriceDisplay string `json:"price_display"`
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.CreateProduct(r.Context(), services.ProductInput{
		Name:          form.Name,
		Description:   form.Description,
		CategoryID:    form.CategoryID,
		SubcategoryID: form.SubcategoryID,
		Image:         form.Image,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

// ListProducts accepts ?q=, ?subcategory_id=, ?page= and ?page_size=.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, pageSize := h.pageParams(r)
	subcategoryID := queryInt(r, "subcategory_id", 0)
	if subcategoryID < 0 {
		subcategoryID = 0
	}

	products, total, err := h.catalog.ListProducts(r.Context(), r.URL.Query().Get("q"), uint(subcategoryID), page, pageSize)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *AdminHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var form VariantForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: price: %v", errBadRequest, err))
		return
	}
	variant, err := h.catalog.CreateVariant(r.Context(), services.VariantInput{
		ProductID: form.ProductID,
		Sku:       form.Sku,
		Price:     price,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, VariantResponse{
		ProductVariant: variant,
		PriceDisplay:   helpers.FormatPrice(variant.Price),
	})
}

func (h *AdminHandler) CreateAttributeVariant(w http.ResponseWriter, r *http.Request) {
	var form AttributeVariantForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	attr, err := h.catalog.CreateAttributeVariant(r.Context(), services.AttributeVariantInput{
		VariantID: form.VariantID,
		BrandID:   form.BrandID,
		ColorID:   form.ColorID,
		SizeID:    form.SizeID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, attr)
}

func (h *AdminHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var form BrandForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	brand, err := h.catalog.CreateBrand(r.Context(), form.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, brand)
}

func (h *AdminHandler) CreateColor(w http.ResponseWriter, r *http.Request) {
	var form ColorForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	color, err := h.catalog.CreateColor(r.Context(), form.Name, form.HexCode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, color)
}
