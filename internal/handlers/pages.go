package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/render"
	"storefront/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PagesHandler — HTML-поверхность. Единственная точка входа в сборку
// страницы: ключ страницы превращается в упорядоченный список блоков.
type PagesHandler struct {
	composer *services.ComposerService
	catalog  *services.CatalogService
	engine   *render.Engine
}

func NewPagesHandler(composer *services.ComposerService, catalog *services.CatalogService, engine *render.Engine) *PagesHandler {
	return &PagesHandler{composer: composer, catalog: catalog, engine: engine}
}

// Home godoc
// @Summary Главная страница
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.composePage(w, r, "home", "Store | Minimal Modern Storefront")
}

// Page godoc
// @Summary Страница по ключу
// @Tags pages
// @Produce html
// @Param pageKey path string true "Ключ страницы"
// @Success 200 {string} string "HTML"
// @Router /pages/{pageKey} [get]
func (h *PagesHandler) Page(w http.ResponseWriter, r *http.Request) {
	pageKey := mux.Vars(r)["pageKey"]
	h.composePage(w, r, pageKey, pageKey+" | Store")
}

// Единственный случай, когда страница падает целиком, — недоступность
// хранилища: тогда отдаём страницу ошибки с 500. Отдельные плохие секции
// до сюда не доходят — они уже деградировали до дефолтов или заглушек.
func (h *PagesHandler) composePage(w http.ResponseWriter, r *http.Request, pageKey, title string) {
	log := logger.WithCtx(r.Context())

	regions, err := h.composer.ComposePage(r.Context(), pageKey)
	if err != nil {
		log.Error("Сборка страницы не удалась",
			zap.String("page_key", pageKey), zap.Error(err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = h.engine.Static(w, "error_page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.engine.Page(w, title, regions); err != nil {
		log.Error("Ошибка вывода страницы", zap.String("page_key", pageKey), zap.Error(err))
	}
}

// Products — HTML-каталог товаров (с фильтром ?category=).
func (h *PagesHandler) Products(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	category := r.URL.Query().Get("category")

	var products []*models.Product
	var err error
	if category != "" {
		products, err = h.catalog.ProductsByCategory(r.Context(), category)
	} else {
		products, err = h.catalog.AllProducts(r.Context())
	}
	if err != nil {
		log.Error("Страница товаров не собралась", zap.Error(err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = h.engine.Static(w, "error_page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.engine.ProductsPage(w, products); err != nil {
		log.Error("Ошибка вывода страницы товаров", zap.Error(err))
	}
}

// Product — HTML-страница товара. Отсутствующий товар — своя страница 404.
func (h *PagesHandler) Product(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.NotFound(w, r)
		return
	}

	p, err := h.catalog.ProductByID(r.Context(), id)
	if err != nil {
		log.Error("Страница товара не собралась", zap.Int("product_id", id), zap.Error(err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_ = h.engine.Static(w, "error_page")
		return
	}
	if p == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_ = h.engine.Static(w, "product_not_found_page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.engine.ProductPage(w, p); err != nil {
		log.Error("Ошибка вывода страницы товара", zap.Int("product_id", id), zap.Error(err))
	}
}

// About — статичная страница, композиция секций ей не нужна.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = h.engine.Static(w, "about_page")
}

func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = h.engine.Static(w, "contact_page")
}

func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = h.engine.Static(w, "not_found_page")
}
