package content

import "fmt"

// Дефолты контента. Каждая функция *FromMap чистая и тотальная: она обязана
// вернуть полностью пригодное для шаблона значение для любого входа, включая
// пустой объект после неудачного декодирования. Лишние поля игнорируются,
// элементы списков заполняются дефолтами независимо друг от друга — один
// битый элемент не отбрасывает соседей.

const (
	DefaultRating = 5
	MaxRating     = 5
)

type CTAButton struct {
	Text   string `json:"text"`
	Action string `json:"action"`
	NewTab bool   `json:"openInNewTab,omitempty"`
}

type HeroContent struct {
	Headline     string     `json:"headline"`
	Subheadline  string     `json:"subheadline"`
	Features     []string   `json:"features,omitempty"`
	CTAPrimary   *CTAButton `json:"ctaPrimary,omitempty"`
	CTASecondary *CTAButton `json:"ctaSecondary,omitempty"`
}

type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeaturesContent struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Features    []Feature `json:"features,omitempty"`
}

type Testimonial struct {
	Content string `json:"content"`
	Author  string `json:"author"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating"`
}

type TestimonialsContent struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

type ShowcaseContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CTAContent struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CTAPrimary   *CTAButton `json:"ctaPrimary,omitempty"`
	CTASecondary *CTAButton `json:"ctaSecondary,omitempty"`
}

type NewsletterContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Placeholder string `json:"placeholder"`
	ButtonText  string `json:"buttonText"`
	PrivacyText string `json:"privacyText,omitempty"`
}

type AboutContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoriesContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func HeroFromMap(m map[string]any) HeroContent {
	c := HeroContent{
		Headline:    stringOr(m, "headline", "Default Headline"),
		Subheadline: stringOr(m, "subheadline", "Default subheadline text"),
		Features:    stringList(m, "features"),
	}
	c.CTAPrimary = buttonFromMap(m, "ctaPrimary", "Primary CTA")
	c.CTASecondary = buttonFromMap(m, "ctaSecondary", "Secondary CTA")
	return c
}

func FeaturesFromMap(m map[string]any) FeaturesContent {
	c := FeaturesContent{
		Title:       stringOr(m, "title", "Our Features"),
		Description: optString(m, "description"),
	}
	for i, o := range objectList(m, "features") {
		c.Features = append(c.Features, Feature{
			Icon:        optString(o, "icon"),
			Title:       stringOr(o, "title", fmt.Sprintf("Feature %d", i+1)),
			Description: stringOr(o, "description", "Feature description"),
		})
	}
	return c
}

func TestimonialsFromMap(m map[string]any) TestimonialsContent {
	c := TestimonialsContent{
		Title:       stringOr(m, "title", "What Our Customers Say"),
		Description: optString(m, "description"),
	}
	for _, o := range objectList(m, "testimonials") {
		// Рейтинг — это число повторений глифа в шаблоне,
		// произвольно большое значение из контента туда попасть не должно.
		rating := intOr(o, "rating", DefaultRating)
		if rating <= 0 {
			rating = DefaultRating
		}
		if rating > MaxRating {
			rating = MaxRating
		}
		c.Testimonials = append(c.Testimonials, Testimonial{
			Content: stringOr(o, "content", "Testimonial content"),
			Author:  stringOr(o, "author", "Author Name"),
			Role:    optString(o, "role"),
			Company: optString(o, "company"),
			Avatar:  optString(o, "avatar"),
			Rating:  rating,
		})
	}
	return c
}

func ShowcaseFromMap(m map[string]any) ShowcaseContent {
	return ShowcaseContent{
		Title:       stringOr(m, "title", "Featured Products"),
		Description: optString(m, "description"),
	}
}

func CTAFromMap(m map[string]any) CTAContent {
	return CTAContent{
		Title:        stringOr(m, "title", "Ready to get started?"),
		Description:  optString(m, "description"),
		CTAPrimary:   buttonFromMap(m, "ctaPrimary", "Get Started"),
		CTASecondary: buttonFromMap(m, "ctaSecondary", "Learn More"),
	}
}

func NewsletterFromMap(m map[string]any) NewsletterContent {
	return NewsletterContent{
		Title:       stringOr(m, "title", "Stay Updated"),
		Description: optString(m, "description"),
		Placeholder: stringOr(m, "placeholder", "Enter your email"),
		ButtonText:  stringOr(m, "buttonText", "Subscribe"),
		PrivacyText: optString(m, "privacyText"),
	}
}

func AboutFromMap(m map[string]any) AboutContent {
	return AboutContent{
		Title:       stringOr(m, "title", "Our Story"),
		Subtitle:    optString(m, "subtitle"),
		Description: optString(m, "description"),
	}
}

func CategoriesFromMap(m map[string]any) CategoriesContent {
	return CategoriesContent{
		Title:       stringOr(m, "title", "Shop by Category"),
		Description: optString(m, "description"),
	}
}

// Кнопка опциональна: отсутствующий или не-объектный узел даёт nil,
// присутствующий — кнопку с дефолтным текстом и действием "#".
func buttonFromMap(m map[string]any, key, defText string) *CTAButton {
	o, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	newTab, _ := o["openInNewTab"].(bool)
	return &CTAButton{
		Text:   stringOr(o, "text", defText),
		Action: stringOr(o, "action", "#"),
		NewTab: newTab,
	}
}

func stringOr(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

func optString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intOr(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func stringList(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	var out []string
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectList приводит список к объектам; не-объектный элемент становится
// пустым объектом и целиком заполняется дефолтами.
func objectList(m map[string]any, key string) []map[string]any {
	raw, _ := m[key].([]any)
	var out []map[string]any
	for _, e := range raw {
		if o, ok := e.(map[string]any); ok {
			out = append(out, o)
			continue
		}
		out = append(out, map[string]any{})
	}
	return out
}
