package services

import (
	"context"

	"storefront/internal/logger"
	"storefront/internal/models"

	"go.uber.org/zap"
)

// CatalogRepo — контракт пути чтения каталога.
type CatalogRepo interface {
	AllProducts(ctx context.Context) ([]*models.Product, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]*models.Product, error)
	AllCategories(ctx context.Context) ([]*models.Category, error)
}

type CatalogService struct {
	repo CatalogRepo
}

func NewCatalogService(repo CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.AllProducts(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка получения товаров", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.repo.ProductByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка получения товара", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	products, err := s.repo.ProductsByCategory(ctx, category)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка получения товаров категории",
			zap.String("category", category), zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) AllCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.AllCategories(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка получения категорий", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
