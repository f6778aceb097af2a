package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Дефолты на пустом объекте: каждое обязательное поле получает фиксированное
// значение, результат полностью пригоден для шаблона.
func TestDefaults_EmptyObject(t *testing.T) {
	empty := map[string]any{}

	hero := HeroFromMap(empty)
	assert.Equal(t, "Default Headline", hero.Headline)
	assert.Equal(t, "Default subheadline text", hero.Subheadline)
	assert.Nil(t, hero.Features)
	assert.Nil(t, hero.CTAPrimary)
	assert.Nil(t, hero.CTASecondary)

	features := FeaturesFromMap(empty)
	assert.Equal(t, "Our Features", features.Title)
	assert.Empty(t, features.Description)
	assert.Nil(t, features.Features)

	testimonials := TestimonialsFromMap(empty)
	assert.Equal(t, "What Our Customers Say", testimonials.Title)
	assert.Nil(t, testimonials.Testimonials)

	showcase := ShowcaseFromMap(empty)
	assert.Equal(t, "Featured Products", showcase.Title)

	cta := CTAFromMap(empty)
	assert.Equal(t, "Ready to get started?", cta.Title)

	newsletter := NewsletterFromMap(empty)
	assert.Equal(t, "Stay Updated", newsletter.Title)
	assert.Equal(t, "Enter your email", newsletter.Placeholder)
	assert.Equal(t, "Subscribe", newsletter.ButtonText)

	about := AboutFromMap(empty)
	assert.Equal(t, "Our Story", about.Title)

	categories := CategoriesFromMap(empty)
	assert.Equal(t, "Shop by Category", categories.Title)
}

// Отсутствующий контент (неудачное декодирование) и пустой объект
// проходят один и тот же путь дефолтов и дают одинаковый результат.
func TestDefaults_MalformedEqualsEmpty(t *testing.T) {
	fromMalformed := HeroFromMap(Decode("{broken"))
	fromEmpty := HeroFromMap(Decode("{}"))

	assert.Equal(t, fromEmpty, fromMalformed)
}

func TestHero_FieldsAndButtons(t *testing.T) {
	m := Decode(`{
		"headline": "Minimal Design, Maximum Impact",
		"features": ["Free shipping", 42, "30-day returns"],
		"ctaPrimary": {"text": "Shop Collection", "action": "/products"},
		"ctaSecondary": {}
	}`)

	hero := HeroFromMap(m)
	assert.Equal(t, "Minimal Design, Maximum Impact", hero.Headline)
	assert.Equal(t, "Default subheadline text", hero.Subheadline)
	// не-строковый элемент списка отбрасывается, соседи остаются
	assert.Equal(t, []string{"Free shipping", "30-day returns"}, hero.Features)

	require.NotNil(t, hero.CTAPrimary)
	assert.Equal(t, "Shop Collection", hero.CTAPrimary.Text)
	assert.Equal(t, "/products", hero.CTAPrimary.Action)

	// присутствующая, но пустая кнопка получает дефолтный текст и действие
	require.NotNil(t, hero.CTASecondary)
	assert.Equal(t, "Secondary CTA", hero.CTASecondary.Text)
	assert.Equal(t, "#", hero.CTASecondary.Action)
}

func TestFeatures_ElementsDefaultedIndependently(t *testing.T) {
	m := Decode(`{"features": [{"title": "Fast Shipping"}, "garbage", {"description": "d"}]}`)

	c := FeaturesFromMap(m)
	require.Len(t, c.Features, 3)

	assert.Equal(t, "Fast Shipping", c.Features[0].Title)
	assert.Equal(t, "Feature description", c.Features[0].Description)

	// битый элемент целиком состоит из дефолтов, нумерация по позиции
	assert.Equal(t, "Feature 2", c.Features[1].Title)
	assert.Equal(t, "Feature description", c.Features[1].Description)

	assert.Equal(t, "Feature 3", c.Features[2].Title)
	assert.Equal(t, "d", c.Features[2].Description)
}

func TestTestimonials_RatingDefaults(t *testing.T) {
	m := Decode(`{"testimonials": [
		{"author": "Sarah", "content": "Great!"},
		{"author": "Mike", "rating": 3},
		{"rating": 0},
		{"rating": -2},
		{"rating": 1000000000}
	]}`)

	c := TestimonialsFromMap(m)
	require.Len(t, c.Testimonials, 5)

	assert.Equal(t, DefaultRating, c.Testimonials[0].Rating)
	assert.Equal(t, 3, c.Testimonials[1].Rating)
	assert.Equal(t, DefaultRating, c.Testimonials[2].Rating)
	assert.Equal(t, DefaultRating, c.Testimonials[3].Rating)
	// рейтинг ограничен сверху: это число повторений глифа в шаблоне
	assert.Equal(t, MaxRating, c.Testimonials[4].Rating)

	assert.Equal(t, "Author Name", c.Testimonials[2].Author)
	assert.Equal(t, "Testimonial content", c.Testimonials[2].Content)
}

// Лишние поля игнорируются и не мешают дефолтам.
func TestDefaults_ExtraFieldsIgnored(t *testing.T) {
	m := Decode(`{"title": "Featured", "totally_unknown": {"deep": [1,2,3]}}`)

	c := ShowcaseFromMap(m)
	assert.Equal(t, "Featured", c.Title)
}
