package models

import "time"

// Известные типы секций. Список открытый: неизвестное значение не
// отбрасывается — диспетчер рендера рисует для него заглушку.
const (
	KindHero            = "hero"
	KindFeatures        = "features"
	KindTestimonials    = "testimonials"
	KindProductShowcase = "product_showcase"
	KindCTA             = "cta"
	KindNewsletter      = "newsletter"
	KindAboutStory      = "about_story"
	KindCategories      = "categories"
)

// Section — один независимо сгенерированный блок страницы.
// Content хранится как сериализованный JSON и всегда проходит через кодек.
type Section struct {
	ID              string    `json:"id"`
	PageKey         string    `json:"page_key"`
	Kind            string    `json:"kind"`
	DisplayName     string    `json:"display_name,omitempty"`
	AuthoringPrompt string    `json:"authoring_prompt,omitempty"`
	Content         string    `json:"content"`
	LayoutVariant   string    `json:"layout_variant"`
	OrderIndex      int       `json:"order_index"`
	IsActive        bool      `json:"is_active"`
	Version         int       `json:"version"`
	GeneratedAt     time.Time `json:"generated_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SectionPatch — частичное обновление: в SET попадают только заполненные поля.
// id и generated_at не изменяются никогда.
type SectionPatch struct {
	PageKey         *string `json:"page_key"`
	Kind            *string `json:"kind"`
	DisplayName     *string `json:"display_name"`
	AuthoringPrompt *string `json:"authoring_prompt"`
	Content         *string `json:"content"`
	LayoutVariant   *string `json:"layout_variant"`
	OrderIndex      *int    `json:"order_index"`
	IsActive        *bool   `json:"is_active"`
}

// IsEmpty сообщает, есть ли в патче хоть одно поле.
func (p *SectionPatch) IsEmpty() bool {
	return p.PageKey == nil && p.Kind == nil && p.DisplayName == nil &&
		p.AuthoringPrompt == nil && p.Content == nil && p.LayoutVariant == nil &&
		p.OrderIndex == nil && p.IsActive == nil
}
