package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/services"
	helpers "storefront/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts godoc
// @Summary Список товаров
// @Tags catalog
// @Produce json
// @Param category query string false "Фильтр по категории"
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var err error
	var products interface{}
	if category != "" {
		products, err = h.svc.ProductsByCategory(r.Context(), category)
	} else {
		products, err = h.svc.AllProducts(r.Context())
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения товаров")
		return
	}

	helpers.JSON(w, http.StatusOK, products)
}

// GetProduct godoc
// @Summary Получить товар по ID
// @Tags catalog
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Невалидный ID"
// @Failure 404 {string} string "Не найдено"
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	// Маска маршрута пропускает и числа, не влезающие в int.
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		log.Warn("Невалидный ID товара", zap.String("id", mux.Vars(r)["id"]), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID товара")
		return
	}

	p, err := h.svc.ProductByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения товара")
		return
	}
	if p == nil {
		log.Warn("Товар не найден", zap.Int("product_id", id))
		helpers.Error(w, http.StatusNotFound, "Товар не найден")
		return
	}

	helpers.JSON(w, http.StatusOK, p)
}

// ListCategories godoc
// @Summary Список категорий
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.AllCategories(r.Context())
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения категорий")
		return
	}

	helpers.JSON(w, http.StatusOK, categories)
}
