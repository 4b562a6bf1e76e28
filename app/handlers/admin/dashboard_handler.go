package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-warehouse/app/helpers"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type AdminHandler struct {
	render    *render.Render
	validator *validator.Validate
	taxonomy  *services.TaxonomyService
	mappings  *services.MappingService
	sizes     *services.SizeService
	catalog   *services.CatalogService
	storage   *services.StorageService
	pageSize  int
	logger    *zap.Logger
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	taxonomy *services.TaxonomyService,
	mappings *services.MappingService,
	sizes *services.SizeService,
	catalog *services.CatalogService,
	storage *services.StorageService,
	pageSize int,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		render:    render,
		validator: validator,
		taxonomy:  taxonomy,
		mappings:  mappings,
		sizes:     sizes,
		catalog:   catalog,
		storage:   storage,
		pageSize:  pageSize,
		logger:    logger,
	}
}

type DashboardData struct {
	TotalCategories    int   `json:"total_categories"`
	TotalSubcategories int   `json:"total_subcategories"`
	TotalMappings      int64 `json:"total_mappings"`
	TotalProducts      int64 `json:"total_products"`
	InvalidSizeTypes   int64 `json:"invalid_size_types"`
}

func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data DashboardData

	categories, err := h.taxonomy.ListCategories(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.TotalCategories = len(categories)

	subcategories, err := h.taxonomy.ListSubcategories(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.TotalSubcategories = len(subcategories)

	mappings, err := h.mappings.CountActive(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.TotalMappings = mappings

	_, total, err := h.catalog.ListProducts(ctx, "", 0, 1, 1)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.TotalProducts = total

	invalid, err := h.sizes.CountInvalidSizeTypes(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.InvalidSizeTypes = invalid

	h.render.JSON(w, http.StatusOK, data)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

var errBadRequest = errors.New("malformed request")

// writeError maps service errors onto HTTP status codes.
func (h *AdminHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.render.JSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: helpers.FormatValidationErrors(validationErrors),
		})
	case errors.Is(err, errBadRequest):
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		h.render.JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrDuplicateMapping),
		errors.Is(err, services.ErrDuplicateSku),
		errors.Is(err, services.ErrVariantHasAttributes):
		h.render.JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidSizeTypeState),
		errors.Is(err, services.ErrPairNotMapped),
		errors.Is(err, services.ErrInvalidMovement):
		h.render.JSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("admin request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decode reads a JSON body into form and runs its validate tags.
func (h *AdminHandler) decode(r *http.Request, form any) error {
	if err := json.NewDecoder(r.Body).Decode(form); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return h.validator.Struct(form)
}

func pathID(r *http.Request, key string) (uint, error) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, key, raw)
	}
	return uint(id), nil
}

const maxPageSize = 100

// pageParams reads ?page= and ?page_size=, clamping the size to maxPageSize.
func (h *AdminHandler) pageParams(r *http.Request) (page, pageSize int) {
	page = queryInt(r, "page", 1)
	pageSize = queryInt(r, "page_size", h.pageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return fallback
}
