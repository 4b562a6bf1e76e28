package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/handlers/admin"
	"github.com/Rakhulsr/go-warehouse/app/middlewares"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"github.com/Rakhulsr/go-warehouse/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func NewRouter(svc *services.Services, env configs.ENV, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.Recoverer(logger), middlewares.RequestLogger(logger))

	adminHandler := admin.NewAdminHandler(
		renderer.New(env.IsDevelopment()),
		validator.New(),
		svc.Taxonomy,
		svc.Mappings,
		svc.Sizes,
		svc.Catalog,
		svc.Storage,
		env.DefaultPageLen,
		logger,
	)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	a := router.PathPrefix("/admin").Subrouter()
	a.HandleFunc("/dashboard", adminHandler.GetDashboard).Methods("GET")

	a.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	a.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	a.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("PUT")
	a.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")
	a.HandleFunc("/categories/{id}/subcategories", adminHandler.GetSubcategoriesOfCategory).Methods("GET")
	a.HandleFunc("/categories/{id}/size-types", adminHandler.GetCategorySizes).Methods("GET")

	a.HandleFunc("/subcategories", adminHandler.ListSubcategories).Methods("GET")
	a.HandleFunc("/subcategories", adminHandler.CreateSubcategory).Methods("POST")
	a.HandleFunc("/subcategories/{id}", adminHandler.UpdateSubcategory).Methods("PUT")
	a.HandleFunc("/subcategories/{id}", adminHandler.DeleteSubcategory).Methods("DELETE")
	a.HandleFunc("/subcategories/{id}/categories", adminHandler.GetCategoriesOfSubcategory).Methods("GET")

	a.HandleFunc("/mappings", adminHandler.ListMappings).Methods("GET")
	a.HandleFunc("/mappings", adminHandler.CreateMapping).Methods("POST")
	a.HandleFunc("/mappings/{id}", adminHandler.UpdateMappingStatus).Methods("PATCH")
	a.HandleFunc("/mappings/{id}", adminHandler.DeleteMapping).Methods("DELETE")

	a.HandleFunc("/genders", adminHandler.ListGenders).Methods("GET")
	a.HandleFunc("/genders", adminHandler.CreateGender).Methods("POST")
	a.HandleFunc("/clothing-sizes", adminHandler.CreateClothingSize).Methods("POST")
	a.HandleFunc("/shoe-sizes", adminHandler.CreateShoeSize).Methods("POST")
	a.HandleFunc("/size-types", adminHandler.CreateSizeType).Methods("POST")
	a.HandleFunc("/size-types/audit", adminHandler.AuditSizeTypes).Methods("GET")
	a.HandleFunc("/size-types/{id}", adminHandler.GetSizeType).Methods("GET")
	a.HandleFunc("/size-types/{id}", adminHandler.UpdateSizeType).Methods("PUT")

	a.HandleFunc("/brands", adminHandler.CreateBrand).Methods("POST")
	a.HandleFunc("/colors", adminHandler.CreateColor).Methods("POST")
	a.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	a.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	a.HandleFunc("/products/{id}", adminHandler.GetProduct).Methods("GET")
	a.HandleFunc("/variants", adminHandler.CreateVariant).Methods("POST")
	a.HandleFunc("/variants/{id}/stock-movements", adminHandler.ListStockMovements).Methods("GET")
	a.HandleFunc("/attribute-variants", adminHandler.CreateAttributeVariant).Methods("POST")

	a.HandleFunc("/zones", adminHandler.GetTopology).Methods("GET")
	a.HandleFunc("/zones", adminHandler.CreateZone).Methods("POST")
	a.HandleFunc("/racks", adminHandler.CreateRack).Methods("POST")
	a.HandleFunc("/locations", adminHandler.CreateLocation).Methods("POST")
	a.HandleFunc("/stock-movements", adminHandler.CreateStockMovement).Methods("POST")

	return router
}
