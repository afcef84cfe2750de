package main // Entry point package

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/iliyamo/recipe-hub/internal/config"
	"github.com/iliyamo/recipe-hub/internal/database"
	"github.com/iliyamo/recipe-hub/internal/handler"
	"github.com/iliyamo/recipe-hub/internal/middleware"
	"github.com/iliyamo/recipe-hub/internal/repository"
	"github.com/iliyamo/recipe-hub/internal/router"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("running with the default JWT secret; set JWT_SECRET")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	users := repository.NewUserRepo(db)
	recipes := repository.NewRecipeRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	auth := middleware.JWTAuth(cfg.JWTSecret, users)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users))
	router.RegisterUsers(e, handler.NewUserHandler(users), auth)
	router.RegisterRecipes(e, handler.NewRecipeHandler(recipes), auth)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
