package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/services"
)

type CategoryForm struct {
	Name   string        `json:"name" validate:"required,min=2,max=100"`
	Image  string        `json:"image" validate:"omitempty,max=255"`
	Status models.Status `json:"status" validate:"omitempty,oneof=Available Unavailable"`
}

func (f CategoryForm) input() services.TaxonomyInput {
	return services.TaxonomyInput{Name: f.Name, Image: f.Image, Status: f.Status}
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.taxonomy.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := h.taxonomy.CreateCategory(r.Context(), form.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var form CategoryForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := h.taxonomy.UpdateCategory(r.Context(), id, form.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.taxonomy.DeleteCategory(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.taxonomy.ListSubcategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, subcategories)
}

func (h *AdminHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	subcategory, err := h.taxonomy.CreateSubcategory(r.Context(), form.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, subcategory)
}

func (h *AdminHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var form CategoryForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	subcategory, err := h.taxonomy.UpdateSubcategory(r.Context(), id, form.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, subcategory)
}

func (h *AdminHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.taxonomy.DeleteSubcategory(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
