package db

import (
	"context"
	"strings"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Стартовый каталог. Категории выводятся из товаров при первом запуске.
var seedProducts = []models.Product{
	{ID: 1, Name: "Classic White T-Shirt", Description: "Premium organic cotton t-shirt with a relaxed fit and timeless design.", Price: 29, Image: "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 2, Name: "Black Hoodie", Description: "Comfortable cotton blend hoodie with kangaroo pocket and drawstring hood.", Price: 59, Image: "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 3, Name: "Running Sneakers", Description: "Lightweight athletic shoes with breathable mesh and cushioned sole.", Price: 89, Image: "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=800&h=800&auto=format&fit=crop", Category: "Shoes"},
	{ID: 4, Name: "Casual Jeans", Description: "Classic straight-leg denim jeans with comfortable stretch fabric.", Price: 79, Image: "https://images.unsplash.com/photo-1604176354204-9268737828e4?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 5, Name: "Canvas Sneakers", Description: "Vintage-style canvas shoes perfect for everyday casual wear.", Price: 45, Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800&h=800&auto=format&fit=crop", Category: "Shoes"},
	{ID: 6, Name: "Polo Shirt", Description: "Classic polo shirt in soft cotton pique with ribbed collar and cuffs.", Price: 39, Image: "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 7, Name: "Leather Boots", Description: "Durable leather boots with non-slip sole and comfortable ankle support.", Price: 129, Image: "https://images.unsplash.com/photo-1608256246200-53e8b47b2dc1?w=800&h=800&auto=format&fit=crop", Category: "Shoes"},
	{ID: 8, Name: "Summer Dress", Description: "Lightweight cotton dress with floral print and comfortable fit.", Price: 69, Image: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 9, Name: "Sports Jacket", Description: "Water-resistant windbreaker perfect for outdoor activities.", Price: 99, Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&h=800&auto=format&fit=crop", Category: "Clothing"},
	{ID: 10, Name: "High-Top Sneakers", Description: "Classic high-top sneakers with durable canvas upper and rubber sole.", Price: 65, Image: "https://images.unsplash.com/photo-1552346154-21d32810aba3?w=800&h=800&auto=format&fit=crop", Category: "Shoes"},
}

// SeedCatalog наполняет пустые таблицы каталога стартовыми данными.
// Непустые таблицы не трогает, поэтому вызов на старте идемпотентен.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}

	if count == 0 {
		for _, p := range seedProducts {
			_, err := pool.Exec(ctx,
				`INSERT INTO products (id, name, description, price, image, category)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, p.Name, p.Description, p.Price, p.Image, p.Category,
			)
			if err != nil {
				return err
			}
		}
		logger.Log.Info("Каталог: товары загружены", zap.Int("count", len(seedProducts)))
	}

	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}

	if count == 0 {
		seen := map[string]bool{}
		order := 0
		for _, p := range seedProducts {
			if seen[p.Category] {
				continue
			}
			seen[p.Category] = true
			slug := strings.ReplaceAll(strings.ToLower(p.Category), " ", "-")
			_, err := pool.Exec(ctx,
				`INSERT INTO categories (id, name, slug, sort_order) VALUES ($1, $2, $3, $4)`,
				order+1, p.Category, slug, order,
			)
			if err != nil {
				return err
			}
			order++
		}
		logger.Log.Info("Каталог: категории загружены", zap.Int("count", order))
	}

	return nil
}

type seedSection struct {
	Kind        string
	DisplayName string
	OrderIndex  int
	Content     string
}

// Канонический набор секций главной страницы. Контент — готовые payload'ы
// в формате кодека; дальше их редактирует внешний генератор через API.
var seedHomeSections = []seedSection{
	{
		Kind:        models.KindHero,
		DisplayName: "Main Hero",
		OrderIndex:  0,
		Content: `{"headline":"Minimal Design, Maximum Impact",` +
			`"subheadline":"Discover our curated collection of premium products designed with simplicity and functionality in mind.",` +
			`"features":["Free shipping on orders over $50","30-day return policy","24/7 customer support"],` +
			`"ctaPrimary":{"text":"Shop Collection","action":"/products"},` +
			`"ctaSecondary":{"text":"Learn More","action":"/about"}}`,
	},
	{
		Kind:        models.KindCategories,
		DisplayName: "Product Categories",
		OrderIndex:  1,
		Content:     `{"title":"Shop by Category","description":"Browse our carefully curated collections"}`,
	},
	{
		Kind:        models.KindProductShowcase,
		DisplayName: "Featured Products",
		OrderIndex:  2,
		Content:     `{"title":"Featured Products","description":"Our most popular items"}`,
	},
	{
		Kind:        models.KindCTA,
		DisplayName: "Summer Sale",
		OrderIndex:  3,
		Content: `{"title":"Summer Sale - Up to 50% Off",` +
			`"description":"Limited time offer on selected items",` +
			`"ctaPrimary":{"text":"Shop Now","action":"/products"}}`,
	},
	{
		Kind:        models.KindFeatures,
		DisplayName: "Our Features",
		OrderIndex:  4,
		Content: `{"title":"Why Choose Us",` +
			`"description":"We're committed to providing the best shopping experience",` +
			`"features":[` +
			`{"title":"Fast Shipping","description":"Free shipping on orders over $50, with delivery in 2-3 business days","icon":"🚚"},` +
			`{"title":"Easy Returns","description":"30-day return policy with free return shipping","icon":"↩️"},` +
			`{"title":"Quality Guarantee","description":"All products come with a 1-year quality guarantee","icon":"✅"}]}`,
	},
	{
		Kind:        models.KindTestimonials,
		DisplayName: "Customer Reviews",
		OrderIndex:  5,
		Content: `{"title":"What Our Customers Say",` +
			`"description":"Don't just take our word for it - hear from our satisfied customers",` +
			`"testimonials":[` +
			`{"content":"The quality of these products exceeded my expectations. I'll definitely be ordering again!","author":"Sarah Johnson","role":"Customer","rating":5},` +
			`{"content":"Fast shipping and excellent customer service. The product arrived in perfect condition.","author":"Michael Chen","role":"Customer","rating":5},` +
			`{"content":"I've purchased several items and have been impressed with the quality and design of each one.","author":"Emma Rodriguez","role":"Customer","rating":4}]}`,
	},
	{
		Kind:        models.KindAboutStory,
		DisplayName: "Our Story",
		OrderIndex:  6,
		Content: `{"title":"Our Story",` +
			`"subtitle":"Crafted with passion and attention to detail",` +
			`"description":"Founded in 2020, our mission has been to provide high-quality, thoughtfully designed products that enhance everyday life. We believe in simplicity, functionality, and sustainability.\n\nEach item in our collection is carefully selected and tested to ensure it meets our standards for quality and design. We work directly with manufacturers who share our values and commitment to ethical production."}`,
	},
	{
		Kind:        models.KindNewsletter,
		DisplayName: "Stay Updated",
		OrderIndex:  7,
		Content: `{"title":"Stay Updated",` +
			`"description":"Subscribe to our newsletter for the latest updates, offers, and style inspiration",` +
			`"placeholder":"Enter your email","buttonText":"Subscribe",` +
			`"privacyText":"We respect your privacy. Unsubscribe at any time."}`,
	},
}

// SeedHomeSections создаёт стартовый набор секций главной страницы.
// Непустая таблица секций не трогается — вызов на старте идемпотентен.
func SeedHomeSections(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range seedHomeSections {
		_, err := pool.Exec(ctx,
			`INSERT INTO sections (id, page_key, kind, display_name, content, layout_variant, order_index, is_active, version)
			 VALUES ($1, 'home', $2, $3, $4, 'default', $5, 1, 1)`,
			uuid.NewString(), s.Kind, s.DisplayName, s.Content, s.OrderIndex,
		)
		if err != nil {
			return err
		}
	}

	logger.Log.Info("Секции: главная страница загружена", zap.Int("count", len(seedHomeSections)))
	return nil
}
