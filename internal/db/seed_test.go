package db

import (
	"encoding/json"
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Стартовые секции пишутся в хранилище как есть, минуя сервисный слой,
// поэтому каждый payload обязан быть валидной сериализацией кодека.
func TestSeedHomeSections_PayloadsAreValidJSON(t *testing.T) {
	for _, s := range seedHomeSections {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(s.Content), &m), "kind=%s", s.Kind)
		require.NotEmpty(t, m, "kind=%s", s.Kind)
	}
}

// Главная страница при первом запуске — восемь секций в каноническом порядке.
func TestSeedHomeSections_CanonicalOrder(t *testing.T) {
	wantKinds := []string{
		models.KindHero, models.KindCategories, models.KindProductShowcase,
		models.KindCTA, models.KindFeatures, models.KindTestimonials,
		models.KindAboutStory, models.KindNewsletter,
	}
	require.Len(t, seedHomeSections, len(wantKinds))

	for i, s := range seedHomeSections {
		assert.Equal(t, wantKinds[i], s.Kind, "позиция %d", i)
		assert.Equal(t, i, s.OrderIndex, "kind=%s", s.Kind)
		assert.NotEmpty(t, s.DisplayName, "kind=%s", s.Kind)
	}

	var hero map[string]any
	require.NoError(t, json.Unmarshal([]byte(seedHomeSections[0].Content), &hero))
	assert.Equal(t, "Minimal Design, Maximum Impact", hero["headline"])
}
