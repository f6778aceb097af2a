package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"storefront/internal/content"
	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// Region — отрендеренный блок страницы. Сборка страницы гарантирует ровно
// один Region на каждую активную секцию, включая заглушки.
type Region struct {
	SectionID string        `json:"section_id"`
	Kind      string        `json:"kind"`
	Variant   string        `json:"variant"`
	HTML      template.HTML `json:"html"`
}

// CollaboratorData — внешние данные каталога, которые нужны части секций.
// Композер загружает их заранее, диспетчер передаёт в шаблон без изменений.
type CollaboratorData struct {
	Products   []*models.Product
	Categories []*models.Category
}

// CollaboratorNeeds — какие наборы внешних данных требуются странице.
type CollaboratorNeeds struct {
	Products   bool
	Categories bool
}

type Engine struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

func NewEngine() *Engine {
	funcs := template.FuncMap{
		// Рейтинг рисуем повторением глифа.
		"stars": func(n int) string { return strings.Repeat("★", n) },
	}
	tmpl := template.Must(
		template.New("storefront").Funcs(funcs).ParseFS(templatesFS, "templates/*.gohtml"),
	)
	return &Engine{
		tmpl:   tmpl,
		policy: bluemonday.UGCPolicy(),
	}
}

type regionRenderer struct {
	template string
	needs    CollaboratorNeeds
	fill     func(e *Engine, m map[string]any, data CollaboratorData) any
}

type showcaseView struct {
	content.ShowcaseContent
	Products []*models.Product
}

type categoriesView struct {
	content.CategoriesContent
	Categories []*models.Category
}

type aboutView struct {
	content.AboutContent
	DescriptionHTML template.HTML
}

type unknownView struct {
	Kind string
}

// Таблица диспетчеризации: тип секции -> (дефолты, шаблон, внешние данные).
// Неизвестный тип обрабатывается отдельной веткой в Render.
var regionRenderers = map[string]regionRenderer{
	models.KindHero: {
		template: "hero",
		fill: func(_ *Engine, m map[string]any, _ CollaboratorData) any {
			return content.HeroFromMap(m)
		},
	},
	models.KindFeatures: {
		template: "features",
		fill: func(_ *Engine, m map[string]any, _ CollaboratorData) any {
			return content.FeaturesFromMap(m)
		},
	},
	models.KindTestimonials: {
		template: "testimonials",
		fill: func(_ *Engine, m map[string]any, _ CollaboratorData) any {
			return content.TestimonialsFromMap(m)
		},
	},
	models.KindProductShowcase: {
		template: "product_showcase",
		needs:    CollaboratorNeeds{Products: true},
		fill: func(_ *Engine, m map[string]any, data CollaboratorData) any {
			return showcaseView{ShowcaseContent: content.ShowcaseFromMap(m), Products: data.Products}
		},
	},
	models.KindCTA: {
		template: "cta",
		fill: func(_ *Engine, m map[string]any, _ CollaboratorData) any {
			return content.CTAFromMap(m)
		},
	},
	models.KindNewsletter: {
		template: "newsletter",
		fill: func(_ *Engine, m map[string]any, _ CollaboratorData) any {
			return content.NewsletterFromMap(m)
		},
	},
	models.KindAboutStory: {
		template: "about_story",
		fill: func(e *Engine, m map[string]any, _ CollaboratorData) any {
			c := content.AboutFromMap(m)
			// Описание приходит от внешнего генератора и может содержать
			// разметку — пропускаем через санитайзер и вставляем как HTML.
			return aboutView{AboutContent: c, DescriptionHTML: template.HTML(e.policy.Sanitize(c.Description))}
		},
	},
	models.KindCategories: {
		template: "categories",
		needs:    CollaboratorNeeds{Categories: true},
		fill: func(_ *Engine, m map[string]any, data CollaboratorData) any {
			return categoriesView{CategoriesContent: content.CategoriesFromMap(m), Categories: data.Categories}
		},
	},
}

// Needs вычисляет, какие внешние наборы данных нужны перечисленным типам
// секций, чтобы композер прочитал каждый набор не больше одного раза.
func Needs(kinds []string) CollaboratorNeeds {
	var n CollaboratorNeeds
	for _, kind := range kinds {
		if r, ok := regionRenderers[kind]; ok {
			n.Products = n.Products || r.needs.Products
			n.Categories = n.Categories || r.needs.Categories
		}
	}
	return n
}

// Render превращает секцию в блок страницы и никогда не возвращает ошибку:
// битый контент рисуется дефолтами, неизвестный тип — видимой заглушкой
// с самим тегом (молчаливый пропуск спрятал бы проблему).
func (e *Engine) Render(sec *models.Section, data CollaboratorData) Region {
	r, ok := regionRenderers[sec.Kind]
	if !ok {
		logger.Log.Warn("Неизвестный тип секции, рисуем заглушку",
			zap.String("section_id", sec.ID),
			zap.String("kind", sec.Kind),
		)
		return e.region(sec, "unknown", unknownView{Kind: sec.Kind})
	}

	m := content.Decode(sec.Content)
	return e.region(sec, r.template, r.fill(e, m, data))
}

func (e *Engine) region(sec *models.Section, name string, data any) Region {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Log.Error("Шаблон секции не выполнен",
			zap.String("section_id", sec.ID),
			zap.String("kind", sec.Kind),
			zap.Error(err),
		)
		buf.Reset()
		_ = e.tmpl.ExecuteTemplate(&buf, "unknown", unknownView{Kind: sec.Kind})
	}
	return Region{
		SectionID: sec.ID,
		Kind:      sec.Kind,
		Variant:   sec.LayoutVariant,
		HTML:      template.HTML(buf.String()),
	}
}

type pageView struct {
	Title   string
	Regions []Region
}

// Page собирает полный HTML-документ из отрендеренных блоков.
func (e *Engine) Page(w io.Writer, title string, regions []Region) error {
	return e.tmpl.ExecuteTemplate(w, "page", pageView{Title: title, Regions: regions})
}

type productsPageView struct {
	Products []*models.Product
}

func (e *Engine) ProductsPage(w io.Writer, products []*models.Product) error {
	return e.tmpl.ExecuteTemplate(w, "products_page", productsPageView{Products: products})
}

func (e *Engine) ProductPage(w io.Writer, p *models.Product) error {
	return e.tmpl.ExecuteTemplate(w, "product_page", p)
}

// Static рисует фиксированную страницу (about, contact, 404, страница ошибки).
func (e *Engine) Static(w io.Writer, name string) error {
	return e.tmpl.ExecuteTemplate(w, name, nil)
}
