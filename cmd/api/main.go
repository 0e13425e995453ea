package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"favoritesapi/internal/catalog"
	"favoritesapi/internal/config"
	"favoritesapi/internal/database"
	"favoritesapi/internal/middleware"
	"favoritesapi/internal/modules/auth"
	"favoritesapi/internal/modules/client"
	"favoritesapi/internal/modules/favorite"
	jwtsvc "favoritesapi/internal/pkg/jwt"
	"favoritesapi/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clientRepo := repository.NewClientRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	catalogClient := catalog.New(cfg.CatalogBaseURL)

	authService := auth.NewService(clientRepo, j)
	authHandler := auth.NewHandler(authService)

	clientService := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientService)

	favoriteService := favorite.NewService(clientRepo, favoriteRepo, catalogClient)
	favoriteHandler := favorite.NewHandler(favoriteService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		// everything else requires a bearer token
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
