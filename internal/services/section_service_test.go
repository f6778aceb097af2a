package services

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/models"
)

// Мок-репозиторий (заглушка): повторяет толерантную семантику адаптера —
// update/delete несуществующего id молча пропускаются.
type mockSectionRepo struct {
	byID    map[string]*models.Section
	nextID  int
	created *models.Section
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{byID: make(map[string]*models.Section)}
}

func (m *mockSectionRepo) Create(_ context.Context, s *models.Section) (*models.Section, error) {
	m.nextID++
	s.ID = fmt.Sprintf("sec-%d", m.nextID)
	s.Version = 1
	m.byID[s.ID] = s
	m.created = s
	return s, nil
}

func (m *mockSectionRepo) GetByID(_ context.Context, id string) (*models.Section, error) {
	return m.byID[id], nil
}

func (m *mockSectionRepo) ListByPage(_ context.Context, pageKey string) ([]*models.Section, error) {
	var out []*models.Section
	for _, s := range m.byID {
		if s.PageKey == pageKey && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSectionRepo) Update(_ context.Context, id string, p *models.SectionPatch) error {
	s, ok := m.byID[id]
	if !ok {
		return nil // no-op
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	s.Version++
	return nil
}

func (m *mockSectionRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func TestSectionService_CreateDefaults(t *testing.T) {
	repo := newMockSectionRepo()
	svc := NewSectionService(repo)

	created, err := svc.Create(context.Background(), &models.Section{
		PageKey: "home",
		Kind:    models.KindHero,
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}

	if created.LayoutVariant != "default" {
		t.Errorf("пустой вариант макета должен стать %q, получен %q", "default", created.LayoutVariant)
	}
	if created.Content != "{}" {
		t.Errorf("пустой контент должен сохраниться как %q, получен %q", "{}", created.Content)
	}
	if created.Version != 1 {
		t.Errorf("новая секция должна иметь версию 1, получена %d", created.Version)
	}
}

func TestSectionService_CreateNormalizesContent(t *testing.T) {
	repo := newMockSectionRepo()
	svc := NewSectionService(repo)

	created, err := svc.Create(context.Background(), &models.Section{
		PageKey: "home",
		Kind:    models.KindHero,
		Content: "{totally broken",
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}

	// битый payload деградирует до пустого объекта ещё на записи
	if created.Content != "{}" {
		t.Errorf("битый контент должен сохраниться как %q, получен %q", "{}", created.Content)
	}
}

func TestSectionService_GetByIDAbsent(t *testing.T) {
	svc := NewSectionService(newMockSectionRepo())

	got, err := svc.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("отсутствие секции — не ошибка: %v", err)
	}
	if got != nil {
		t.Fatal("для отсутствующей секции должен вернуться nil")
	}
}

func TestSectionService_UpdateMissingIDIsNoop(t *testing.T) {
	svc := NewSectionService(newMockSectionRepo())

	active := false
	err := svc.Update(context.Background(), "no-such-id", &models.SectionPatch{IsActive: &active})
	if err != nil {
		t.Fatalf("обновление несуществующего id должно быть no-op: %v", err)
	}
}

func TestSectionService_UpdateNormalizesContent(t *testing.T) {
	repo := newMockSectionRepo()
	svc := NewSectionService(repo)

	created, _ := svc.Create(context.Background(), &models.Section{
		PageKey: "home",
		Kind:    models.KindNewsletter,
	})

	broken := `{"title": }`
	if err := svc.Update(context.Background(), created.ID, &models.SectionPatch{Content: &broken}); err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}

	got := repo.byID[created.ID]
	if got.Content != "{}" {
		t.Errorf("битый патч контента должен нормализоваться в %q, получено %q", "{}", got.Content)
	}
}

func TestSectionService_DeleteMissingIDIsNoop(t *testing.T) {
	svc := NewSectionService(newMockSectionRepo())

	if err := svc.Delete(context.Background(), "no-such-id"); err != nil {
		t.Fatalf("удаление несуществующего id должно быть no-op: %v", err)
	}
}
