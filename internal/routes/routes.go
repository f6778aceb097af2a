package routes

import (
	"net/http"

	"storefront/internal/handlers"
	"storefront/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	pagesHandler *handlers.PagesHandler,
	sectionsHandler *handlers.SectionsHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичное API ---
	api.HandleFunc("/products", catalogHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", catalogHandler.GetProduct).Methods("GET")
	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")

	api.HandleFunc("/pages/{pageKey}/sections", sectionsHandler.ListPageSections).Methods("GET")
	api.HandleFunc("/sections/{id}", sectionsHandler.GetSection).Methods("GET")

	// --- Авторская поверхность (пишет внешний генератор контента) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/sections", sectionsHandler.CreateSection).Methods("POST")
	admin.HandleFunc("/sections/{id}", sectionsHandler.UpdateSection).Methods("PATCH")
	admin.HandleFunc("/sections/{id}", sectionsHandler.DeleteSection).Methods("DELETE")

	// --- HTML-страницы ---
	router.HandleFunc("/", pagesHandler.Home).Methods("GET")
	router.HandleFunc("/pages/{pageKey}", pagesHandler.Page).Methods("GET")
	router.HandleFunc("/products", pagesHandler.Products).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", pagesHandler.Product).Methods("GET")
	router.HandleFunc("/about", pagesHandler.About).Methods("GET")
	router.HandleFunc("/contact", pagesHandler.Contact).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(pagesHandler.NotFound)
}
