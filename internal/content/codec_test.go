package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_MalformedNeverFails(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"{",
		"not json at all",
		`{"headline": }`,
		`[1, 2, 3]`,
		`"just a string"`,
		"null",
		"\x00\x01\x02",
	}

	for _, raw := range cases {
		got := Decode(raw)
		require.NotNil(t, got, "raw=%q", raw)
		assert.Empty(t, got, "raw=%q", raw)
	}
}

func TestDecode_ValidObject(t *testing.T) {
	got := Decode(`{"headline":"Hi","rating":3,"nested":{"a":true}}`)

	require.Equal(t, "Hi", got["headline"])
	require.Equal(t, float64(3), got["rating"])
	require.Equal(t, map[string]any{"a": true}, got["nested"])
}

func TestEncode_UnserializableDegradesToEmptyObject(t *testing.T) {
	assert.Equal(t, "{}", Encode(make(chan int)))
	assert.Equal(t, "{}", Encode(func() {}))
}

// Закон кругового обхода: всё, что производят дефолты схем, переживает
// encode/decode без потерь.
func TestRoundTrip_DefaultedValues(t *testing.T) {
	defaulted := []any{
		HeroFromMap(map[string]any{}),
		HeroFromMap(Decode(`{"features":["a","b"],"ctaPrimary":{"text":"Go"}}`)),
		FeaturesFromMap(Decode(`{"features":[{"title":"X"},{}]}`)),
		TestimonialsFromMap(Decode(`{"testimonials":[{"rating":3},{}]}`)),
		ShowcaseFromMap(map[string]any{}),
		CTAFromMap(map[string]any{}),
		NewsletterFromMap(map[string]any{}),
		AboutFromMap(map[string]any{}),
		CategoriesFromMap(map[string]any{}),
	}

	for _, v := range defaulted {
		m := Decode(Encode(v))
		require.NotEmpty(t, m)
		assert.Equal(t, m, Decode(Encode(m)))
	}
}
