package main

import (
	"context"
	"log"

	"UserHubAPI/internal/config"
	"UserHubAPI/internal/db"
	"UserHubAPI/internal/middleware"
	"UserHubAPI/internal/repository"
	"UserHubAPI/internal/services"
	"UserHubAPI/internal/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// INFRA
	// ======================
	ctx := context.Background()
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
			log.Fatal(err)
		}
	}
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	accountRepo := repository.NewAccountRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	postRepo := repository.NewPostRepository(pool)

	// ======================
	// SERVICES
	// ======================
	accountSvc := services.NewAccountService(accountRepo)
	profileSvc := services.NewProfileService(profileRepo)
	postSvc := services.NewPostService(postRepo)
	authSvc := services.NewAuthService(accountRepo)

	tokenSvc := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	guard := middleware.NewGuard(tokenSvc)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, tokenSvc)
	registerAccountRoutes(api, accountSvc, guard, cfg.ProtectWrites)
	registerProfileRoutes(api, profileSvc, guard, cfg.ProtectWrites)
	registerPostRoutes(api, postSvc, guard, cfg.ProtectWrites)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
