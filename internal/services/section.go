package services

import (
	"context"

	"storefront/internal/content"
	"storefront/internal/logger"
	"storefront/internal/models"

	"go.uber.org/zap"
)

// SectionRepo — контракт адаптера хранилища секций.
type SectionRepo interface {
	Create(ctx context.Context, s *models.Section) (*models.Section, error)
	GetByID(ctx context.Context, id string) (*models.Section, error)
	ListByPage(ctx context.Context, pageKey string) ([]*models.Section, error)
	Update(ctx context.Context, id string, p *models.SectionPatch) error
	Delete(ctx context.Context, id string) error
}

type SectionService struct {
	repo SectionRepo
}

func NewSectionService(repo SectionRepo) *SectionService {
	return &SectionService{repo: repo}
}

func (s *SectionService) Create(ctx context.Context, sec *models.Section) (*models.Section, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание секции",
		zap.String("page_key", sec.PageKey),
		zap.String("kind", sec.Kind),
	)

	if sec.LayoutVariant == "" {
		sec.LayoutVariant = "default"
	}
	// Контент всегда проходит через кодек: что бы ни пришло, в хранилище
	// попадает валидная сериализация.
	sec.Content = content.Encode(content.Decode(sec.Content))

	created, err := s.repo.Create(ctx, sec)
	if err != nil {
		log.Error("Сервис: ошибка создания секции", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: секция создана", zap.String("section_id", created.ID))
	return created, nil
}

// GetByID возвращает (nil, nil) для отсутствующей секции.
func (s *SectionService) GetByID(ctx context.Context, id string) (*models.Section, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: получение секции", zap.String("section_id", id))

	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Сервис: ошибка выборки секции", zap.String("section_id", id), zap.Error(err))
		return nil, err
	}
	return sec, nil
}

func (s *SectionService) ListByPage(ctx context.Context, pageKey string) ([]*models.Section, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: список секций страницы", zap.String("page_key", pageKey))

	sections, err := s.repo.ListByPage(ctx, pageKey)
	if err != nil {
		log.Error("Сервис: ошибка получения секций", zap.String("page_key", pageKey), zap.Error(err))
		return nil, err
	}

	log.Debug("Сервис: секции получены",
		zap.String("page_key", pageKey),
		zap.Int("count", len(sections)),
	)
	return sections, nil
}

// Update несуществующего id — no-op: хранилище молча пропускает такие
// обновления, поведение унаследовано от исходной системы (см. DESIGN.md).
func (s *SectionService) Update(ctx context.Context, id string, p *models.SectionPatch) error {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление секции", zap.String("section_id", id))

	if p != nil && p.Content != nil {
		normalized := content.Encode(content.Decode(*p.Content))
		p.Content = &normalized
	}

	if err := s.repo.Update(ctx, id, p); err != nil {
		log.Error("Сервис: ошибка обновления секции", zap.String("section_id", id), zap.Error(err))
		return err
	}

	log.Info("Сервис: секция обновлена", zap.String("section_id", id))
	return nil
}

// Delete несуществующего id — тоже no-op.
func (s *SectionService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление секции", zap.String("section_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления секции", zap.String("section_id", id), zap.Error(err))
		return err
	}

	log.Info("Сервис: секция удалена", zap.String("section_id", id))
	return nil
}
