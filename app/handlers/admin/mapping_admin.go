package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/models"
)

type MappingForm struct {
	CategoryID    uint `json:"category_id" validate:"required"`
	SubcategoryID uint `json:"subcategory_id" validate:"required"`
}

type MappingStatusForm struct {
	Status models.Status `json:"status" validate:"required,oneof=Available Unavailable"`
}

func (h *AdminHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var form MappingForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	mapping, err := h.mappings.MapCategoryToSubcategory(r.Context(), form.CategoryID, form.SubcategoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, mapping)
}

func (h *AdminHandler) ListMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappings.ListMappings(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, mappings)
}

func (h *AdminHandler) UpdateMappingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var form MappingStatusForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	mapping, err := h.mappings.SetMappingStatus(r.Context(), id, form.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, mapping)
}

// DeleteMapping always answers 200; removed reports whether a row existed.
func (h *AdminHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	removed, err := h.mappings.Unmap(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (h *AdminHandler) GetSubcategoriesOfCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	subcategories, err := h.mappings.SubcategoriesOf(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, subcategories)
}

func (h *AdminHandler) GetCategoriesOfSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	categories, err := h.mappings.CategoriesOf(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}
