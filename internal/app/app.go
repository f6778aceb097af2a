package app

import (
	"context"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handlers"
	"storefront/internal/render"
	"storefront/internal/repository"
	"storefront/internal/routes"
	"storefront/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, conn); err != nil {
		return nil, err
	}
	if cfg.SeedData == "on" {
		if err := db.SeedCatalog(ctx, conn); err != nil {
			return nil, err
		}
		if err := db.SeedHomeSections(ctx, conn); err != nil {
			return nil, err
		}
	}

	// Репозитории
	sectionRepo := repository.NewSectionRepository(conn)
	catalogRepo := repository.NewCatalogRepository(conn)

	// Рендер
	engine := render.NewEngine()

	// Сервисы
	sectionService := services.NewSectionService(sectionRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	composerService := services.NewComposerService(sectionRepo, catalogService, engine)

	// Хендлеры
	pagesHandler := handlers.NewPagesHandler(composerService, catalogService, engine)
	sectionsHandler := handlers.NewSectionsHandler(sectionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, pagesHandler, sectionsHandler, catalogHandler)

	return router, nil
}
