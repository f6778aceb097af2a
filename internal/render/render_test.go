package render

import (
	"strings"
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(kind, content string) *models.Section {
	return &models.Section{
		ID:            "sec-" + kind,
		PageKey:       "home",
		Kind:          kind,
		Content:       content,
		LayoutVariant: "default",
		IsActive:      true,
	}
}

func TestRender_UnknownKindPlaceholder(t *testing.T) {
	e := NewEngine()

	region := e.Render(section("not_a_real_kind", "{}"), CollaboratorData{})

	assert.Equal(t, "not_a_real_kind", region.Kind)
	assert.Contains(t, string(region.HTML), "Unknown section type: not_a_real_kind")
}

func TestRender_EveryKnownKindOnEmptyContent(t *testing.T) {
	e := NewEngine()
	kinds := []string{
		models.KindHero, models.KindFeatures, models.KindTestimonials,
		models.KindProductShowcase, models.KindCTA, models.KindNewsletter,
		models.KindAboutStory, models.KindCategories,
	}

	for _, kind := range kinds {
		region := e.Render(section(kind, ""), CollaboratorData{})
		require.NotEmpty(t, string(region.HTML), "kind=%s", kind)
		assert.NotContains(t, string(region.HTML), "Unknown section type", "kind=%s", kind)
	}
}

func TestRender_HeroDefaults(t *testing.T) {
	e := NewEngine()

	region := e.Render(section(models.KindHero, "{definitely broken json"), CollaboratorData{})

	html := string(region.HTML)
	assert.Contains(t, html, "Default Headline")
	assert.Contains(t, html, "Default subheadline text")
}

func TestRender_ShowcaseEmptyState(t *testing.T) {
	e := NewEngine()

	region := e.Render(section(models.KindProductShowcase, `{"title":"Featured"}`), CollaboratorData{})

	html := string(region.HTML)
	assert.Contains(t, html, "Featured")
	assert.Contains(t, html, "No products available")
}

func TestRender_ShowcaseWithProducts(t *testing.T) {
	e := NewEngine()
	data := CollaboratorData{
		Products: []*models.Product{
			{ID: 1, Name: "Classic White T-Shirt", Price: 29, Image: "/img/1.jpg"},
		},
	}

	region := e.Render(section(models.KindProductShowcase, "{}"), data)

	html := string(region.HTML)
	assert.Contains(t, html, "Classic White T-Shirt")
	assert.NotContains(t, html, "No products available")
}

func TestRender_CategoriesEmptyState(t *testing.T) {
	e := NewEngine()

	region := e.Render(section(models.KindCategories, "{}"), CollaboratorData{})

	assert.Contains(t, string(region.HTML), "No categories available")
}

func TestRender_TestimonialRatingGlyphs(t *testing.T) {
	e := NewEngine()
	raw := `{"testimonials":[{"author":"A"},{"author":"B","rating":3}]}`

	region := e.Render(section(models.KindTestimonials, raw), CollaboratorData{})

	// первый отзыв без рейтинга получает 5 глифов, второй — ровно 3
	html := string(region.HTML)
	assert.Equal(t, 8, strings.Count(html, "★"))
}

// Сломанная секция не влияет на соседей: рендер каждой секции независим.
func TestRender_BadSectionDoesNotAffectNeighbors(t *testing.T) {
	e := NewEngine()
	data := CollaboratorData{}

	broken := e.Render(section("not_a_real_kind", "{oops"), data)
	hero := e.Render(section(models.KindHero, "{}"), data)

	assert.Contains(t, string(broken.HTML), "not_a_real_kind")
	assert.Contains(t, string(hero.HTML), "Default Headline")
}

func TestNeeds_UnionOfKinds(t *testing.T) {
	n := Needs([]string{models.KindHero, models.KindNewsletter})
	assert.False(t, n.Products)
	assert.False(t, n.Categories)

	n = Needs([]string{models.KindProductShowcase, models.KindCategories, "unknown_kind"})
	assert.True(t, n.Products)
	assert.True(t, n.Categories)
}

func TestProductPage(t *testing.T) {
	e := NewEngine()
	p := &models.Product{
		ID: 7, Name: "Leather Boots", Description: "Durable leather boots.",
		Price: 129, Category: "Shoes", Image: "/img/7.jpg",
	}

	var buf strings.Builder
	require.NoError(t, e.ProductPage(&buf, p))

	html := buf.String()
	assert.Contains(t, html, "Leather Boots")
	assert.Contains(t, html, "$129")
	assert.Contains(t, html, "Shoes")
	assert.Contains(t, html, "Leather Boots | Store")
}

func TestStatic_ProductNotFoundPage(t *testing.T) {
	e := NewEngine()

	var buf strings.Builder
	require.NoError(t, e.Static(&buf, "product_not_found_page"))
	assert.Contains(t, buf.String(), "Product Not Found")
}

func TestRender_VariantPassedThrough(t *testing.T) {
	e := NewEngine()
	sec := section(models.KindHero, "{}")
	sec.LayoutVariant = "split"

	region := e.Render(sec, CollaboratorData{})

	assert.Equal(t, "split", region.Variant)
}
