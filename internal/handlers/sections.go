package handlers

import (
	"encoding/json"
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services"
	helpers "storefront/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SectionsHandler struct {
	svc *services.SectionService
}

func NewSectionsHandler(svc *services.SectionService) *SectionsHandler {
	return &SectionsHandler{svc: svc}
}

type createSectionRequest struct {
	PageKey         string          `json:"page_key"`
	Kind            string          `json:"kind"`
	DisplayName     string          `json:"display_name"`
	AuthoringPrompt string          `json:"authoring_prompt"`
	Content         json.RawMessage `json:"content"`
	LayoutVariant   string          `json:"layout_variant"`
	OrderIndex      int             `json:"order_index"`
	IsActive        *bool           `json:"is_active"`
}

type updateSectionRequest struct {
	PageKey         *string          `json:"page_key"`
	Kind            *string          `json:"kind"`
	DisplayName     *string          `json:"display_name"`
	AuthoringPrompt *string          `json:"authoring_prompt"`
	Content         *json.RawMessage `json:"content"`
	LayoutVariant   *string          `json:"layout_variant"`
	OrderIndex      *int             `json:"order_index"`
	IsActive        *bool            `json:"is_active"`
}

// CreateSection godoc
// @Summary Создать секцию страницы
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param input body createSectionRequest true "Данные секции"
// @Success 201 {object} models.Section
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/admin/sections [post]
func (h *SectionsHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req createSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании секции", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.PageKey == "" || req.Kind == "" {
		log.Warn("Создание секции без page_key или kind")
		helpers.Error(w, http.StatusBadRequest, "page_key и kind обязательны")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sec := &models.Section{
		PageKey:         req.PageKey,
		Kind:            req.Kind,
		DisplayName:     req.DisplayName,
		AuthoringPrompt: req.AuthoringPrompt,
		Content:         string(req.Content),
		LayoutVariant:   req.LayoutVariant,
		OrderIndex:      req.OrderIndex,
		IsActive:        isActive,
	}

	created, err := h.svc.Create(r.Context(), sec)
	if err != nil {
		log.Error("Ошибка создания секции", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка создания")
		return
	}

	helpers.JSON(w, http.StatusCreated, created)
}

// GetSection godoc
// @Summary Получить секцию по ID
// @Tags sections
// @Produce json
// @Param id path string true "ID секции"
// @Success 200 {object} models.Section
// @Failure 404 {string} string "Не найдено"
// @Router /api/sections/{id} [get]
func (h *SectionsHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log := logger.WithCtx(r.Context())

	sec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения секции")
		return
	}
	if sec == nil {
		log.Warn("Секция не найдена", zap.String("section_id", id))
		helpers.Error(w, http.StatusNotFound, "Секция не найдена")
		return
	}

	helpers.JSON(w, http.StatusOK, sec)
}

// ListPageSections godoc
// @Summary Активные секции страницы по порядку
// @Tags sections
// @Produce json
// @Param pageKey path string true "Ключ страницы"
// @Success 200 {array} models.Section
// @Router /api/pages/{pageKey}/sections [get]
func (h *SectionsHandler) ListPageSections(w http.ResponseWriter, r *http.Request) {
	pageKey := mux.Vars(r)["pageKey"]

	sections, err := h.svc.ListByPage(r.Context(), pageKey)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка получения секций")
		return
	}

	helpers.JSON(w, http.StatusOK, sections)
}

// UpdateSection godoc
// @Summary Частично обновить секцию
// @Description Обновление несуществующего id — no-op, отвечает 200
// @Tags admin-sections
// @Accept json
// @Produce json
// @Param id path string true "ID секции"
// @Param input body updateSectionRequest true "Изменяемые поля"
// @Success 200 {string} string "Обновлено"
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/admin/sections/{id} [patch]
func (h *SectionsHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log := logger.WithCtx(r.Context())

	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении секции", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	patch := &models.SectionPatch{
		PageKey:         req.PageKey,
		Kind:            req.Kind,
		DisplayName:     req.DisplayName,
		AuthoringPrompt: req.AuthoringPrompt,
		LayoutVariant:   req.LayoutVariant,
		OrderIndex:      req.OrderIndex,
		IsActive:        req.IsActive,
	}
	if req.Content != nil {
		c := string(*req.Content)
		patch.Content = &c
	}

	if err := h.svc.Update(r.Context(), id, patch); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка обновления")
		return
	}

	helpers.JSON(w, http.StatusOK, "Обновлено")
}

// DeleteSection godoc
// @Summary Удалить секцию
// @Description Удаление несуществующего id — no-op, отвечает 200
// @Tags admin-sections
// @Produce json
// @Param id path string true "ID секции"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/sections/{id} [delete]
func (h *SectionsHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	helpers.JSON(w, http.StatusOK, "Удалено")
}
