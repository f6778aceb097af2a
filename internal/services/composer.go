package services

import (
	"context"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/render"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PageSectionLister — то, что композеру нужно от хранилища секций.
type PageSectionLister interface {
	ListByPage(ctx context.Context, pageKey string) ([]*models.Section, error)
}

// CatalogReader — внешние данные, которые нужны части типов секций.
type CatalogReader interface {
	AllProducts(ctx context.Context) ([]*models.Product, error)
	AllCategories(ctx context.Context) ([]*models.Category, error)
}

// ComposerService собирает страницу: упорядоченный список активных секций,
// необходимые данные каталога и диспетчеризация рендера по порядку.
type ComposerService struct {
	sections PageSectionLister
	catalog  CatalogReader
	engine   *render.Engine
}

func NewComposerService(sections PageSectionLister, catalog CatalogReader, engine *render.Engine) *ComposerService {
	return &ComposerService{sections: sections, catalog: catalog, engine: engine}
}

// ComposePage возвращает ровно один блок на каждую активную секцию страницы
// в порядке возрастания order_index. Плохая секция деградирует до дефолтов
// или заглушки; единственная причина ошибки — недоступность хранилища.
func (s *ComposerService) ComposePage(ctx context.Context, pageKey string) ([]render.Region, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: сборка страницы", zap.String("page_key", pageKey))

	sections, err := s.sections.ListByPage(ctx, pageKey)
	if err != nil {
		log.Error("Сервис: ошибка чтения секций страницы",
			zap.String("page_key", pageKey), zap.Error(err))
		return nil, err
	}

	kinds := make([]string, 0, len(sections))
	for _, sec := range sections {
		kinds = append(kinds, sec.Kind)
	}
	needs := render.Needs(kinds)

	// Каждый набор внешних данных читается не больше одного раза на сборку.
	// Чтения независимы и выполняются параллельно, результат соединяется
	// до начала диспетчеризации.
	var data render.CollaboratorData
	g, gctx := errgroup.WithContext(ctx)
	if needs.Products {
		g.Go(func() error {
			products, err := s.catalog.AllProducts(gctx)
			if err != nil {
				return err
			}
			data.Products = products
			return nil
		})
	}
	if needs.Categories {
		g.Go(func() error {
			categories, err := s.catalog.AllCategories(gctx)
			if err != nil {
				return err
			}
			data.Categories = categories
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Сервис: ошибка чтения данных каталога",
			zap.String("page_key", pageKey), zap.Error(err))
		return nil, err
	}

	regions := make([]render.Region, 0, len(sections))
	for _, sec := range sections {
		regions = append(regions, s.engine.Render(sec, data))
	}

	log.Debug("Сервис: страница собрана",
		zap.String("page_key", pageKey),
		zap.Int("regions", len(regions)),
	)
	return regions, nil
}
