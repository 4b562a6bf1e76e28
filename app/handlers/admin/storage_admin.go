package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/models"
	"github.com/Rakhulsr/go-warehouse/app/services"
)

type ZoneForm struct {
	Code string `json:"code" validate:"required,alphanum,max=10"`
	Name string `json:"name" validate:"required,max=100"`
}

type RackForm struct {
	ZoneID uint   `json:"zone_id" validate:"required"`
	Code   string `json:"code" validate:"required,alphanum,max=10"`
}

type LocationForm struct {
	RackID uint   `json:"rack_id" validate:"required"`
	Bin    string `json:"bin" validate:"required,alphanum,max=10"`
}

type MovementForm struct {
	VariantID    uint                `json:"variant_id" validate:"required"`
	LocationID   uint                `json:"location_id" validate:"required"`
	ToLocationID *uint               `json:"to_location_id"`
	MovementType models.MovementType `json:"movement_type" validate:"required"`
	Quantity     int                 `json:"quantity"`
	Note         string              `json:"note" validate:"omitempty,max=255"`
}

type MovementListResponse struct {
	Movements []models.StockMovement `json:"movements"`
	Total     int64                  `json:"total"`
	Page      int                    `json:"page"`
	PageSize  int                    `json:"page_size"`
}

func (h *AdminHandler) GetTopology(w http.ResponseWriter, r *http.Request) {
	zones, err := h.storage.Topology(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, zones)
}

func (h *AdminHandler) CreateZone(w http.ResponseWriter, r *http.Request) {
	var form ZoneForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	zone, err := h.storage.CreateZone(r.Context(), form.Code, form.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, zone)
}

func (h *AdminHandler) CreateRack(w http.ResponseWriter, r *http.Request) {
	var form RackForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	rack, err := h.storage.CreateRack(r.Context(), form.ZoneID, form.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, rack)
}

func (h *AdminHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var form LocationForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	location, err := h.storage.CreateLocation(r.Context(), form.RackID, form.Bin)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, location)
}

// CreateStockMovement leaves type and quantity rules to the storage service
// so they surface as 422 like other domain violations.
func (h *AdminHandler) CreateStockMovement(w http.ResponseWriter, r *http.Request) {
	var form MovementForm
	if err := h.decode(r, &form); err != nil {
		h.writeError(w, r, err)
		return
	}
	movement, err := h.storage.RecordMovement(r.Context(), services.MovementInput{
		VariantID:    form.VariantID,
		LocationID:   form.LocationID,
		ToLocationID: form.ToLocationID,
		MovementType: form.MovementType,
		Quantity:     form.Quantity,
		Note:         form.Note,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, movement)
}

func (h *AdminHandler) ListStockMovements(w http.ResponseWriter, r *http.Request) {
	variantID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, pageSize := h.pageParams(r)

	movements, total, err := h.storage.MovementsOf(r.Context(), variantID, page, pageSize)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, MovementListResponse{
		Movements: movements,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	})
}
