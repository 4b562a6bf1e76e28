package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/services"
)

type GenderForm struct {
	Name string `json:"name" validate:"required,max=50"`
}

type SizeForm struct {
	SizeValue    string            `json:"size_value" validate:"required,max=20"`
	GenderID     uint              `json:"gender_id" validate:"required"`
	Measurements map[string]string `json:"measurements"`
}

// SizeTypeForm carries both nullable references as sent by the client. The
// exactly-one rule is enforced by the size service, not by tags.
type SizeTypeForm struct {
	CategoryID     uint          `json:"category_id" validate:"required"`
	ClothingSizeID *uint         `json:"clothing_size_id"`
	ShoeSizeID     *uint         `json:"shoe_size_id"`
	Status         models.Status `json:"status" validate:"omitempty,oneof=Available Unavailable"`
}

// ref returns nil unless exactly one reference is present.
func (f SizeTypeForm) ref() models.SizeRef {
	switch {
	case f.ClothingSizeID != nil && f.ShoeSizeID == nil:
		return models.ClothingSizeRef{ID: *f.ClothingSizeID}
	case f.ShoeSizeID != nil && f.ClothingSizeID == nil:
		return models.ShoeSizeRef{ID: *f.ShoeSizeID}
	default:
		return nil
	}
}

type SizeTypeResponse struct {
	SizeType *models.SizeType     `json:"size_type"`
	Resolved services.ResolvedSize `json:"resolved"`
}

type AuditRow struct {
	SizeTypeID uint `json:"size_type_id"`
	CategoryID uint `json:"category_id"`
	BothSet    bool `json:"both_set"`
}

func (h *AdminHandler) ListGenders(w http.ResponseWriter, r *http.Request) {
	genders, err := h.sizes.ListGenders(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, genders)
}

func (h *AdminHandler) CreateGender(w http.ResponseWriter, r *http.Request) {
	var form GenderForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	gender, err := h.sizes.CreateGender(r.Context(), form.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, gender)
}

func (h *AdminHandler) CreateClothingSize(w http.ResponseWriter, r *http.Request) {
	var form SizeForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	size, err := h.sizes.CreateClothingSize(r.Context(), form.SizeValue, form.GenderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, size)
}

func (h *AdminHandler) CreateShoeSize(w http.ResponseWriter, r *http.Request) {
	var form SizeForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	size, err := h.sizes.CreateShoeSize(r.Context(), form.SizeValue, form.GenderID, form.Measurements)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, size)
}

func (h *AdminHandler) CreateSizeType(w http.ResponseWriter, r *http.Request) {
	var form SizeTypeForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	sizeType, err := h.sizes.CreateSizeType(r.Context(), &models.SizeType{
		CategoryID:     form.CategoryID,
		ClothingSizeID: form.ClothingSizeID,
		ShoeSizeID:     form.ShoeSizeID,
		Status:         form.Status,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, SizeTypeResponse{
		SizeType: sizeType,
		Resolved: h.sizes.Resolve(r.Context(), sizeType),
	})
}

func (h *AdminHandler) UpdateSizeType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var form SizeTypeForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	sizeType, err := h.sizes.UpdateSizeType(r.Context(), id, form.CategoryID, form.ref(), form.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, SizeTypeResponse{
		SizeType: sizeType,
		Resolved: h.sizes.Resolve(r.Context(), sizeType),
	})
}

func (h *AdminHandler) GetSizeType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sizeType, err := h.sizes.GetSizeType(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, SizeTypeResponse{
		SizeType: sizeType,
		Resolved: h.sizes.Resolve(r.Context(), sizeType),
	})
}

func (h *AdminHandler) GetCategorySizes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resolved, err := h.sizes.ResolveByCategory(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, resolved)
}

func (h *AdminHandler) AuditSizeTypes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.sizes.AuditSizeTypes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	flagged := make([]AuditRow, 0, len(rows))
	for _, row := range rows {
		flagged = append(flagged, AuditRow{
			SizeTypeID: row.ID,
			CategoryID: row.CategoryID,
			BothSet:    row.BothSet(),
		})
	}
	h.render.JSON(w, http.StatusOK, flagged)
}
