package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/recipe-hub/internal/config"
	"github.com/iliyamo/recipe-hub/internal/handler"
	"github.com/iliyamo/recipe-hub/internal/middleware"
	"github.com/iliyamo/recipe-hub/internal/model"
	"github.com/iliyamo/recipe-hub/internal/repository"
	"github.com/iliyamo/recipe-hub/internal/router"
	"github.com/iliyamo/recipe-hub/internal/utils"
)

// newTestAPI wires the real routes and middleware over the in-memory store
// so every test drives the same HTTP surface a client sees.
func newTestAPI(t *testing.T) (*echo.Echo, *repository.MemoryStore, config.Config) {
	t.Helper()
	cfg := config.Config{
		Env:          "test",
		JWTSecret:    "test-secret",
		JWTAlg:       "HS256",
		AccessTTLMin: 60,
	}
	store := repository.NewMemoryStore()

	e := echo.New()
	auth := middleware.JWTAuth(cfg.JWTSecret, store.Users())

	// Same route table the server builds in cmd/server.
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, store.Users()))
	router.RegisterUsers(e, handler.NewUserHandler(store.Users()), auth)
	router.RegisterRecipes(e, handler.NewRecipeHandler(store.Recipes()), auth)

	return e, store, cfg
}

func seedUser(t *testing.T, store *repository.MemoryStore, email, password string) model.User {
	t.Helper()
	u, err := store.Users().Create(context.Background(),
		email, utils.HashPassword(password, email), nil)
	require.NoError(t, err)
	return u
}

func bearer(t *testing.T, cfg config.Config, u model.User) string {
	t.Helper()
	tok, err := utils.NewAccessToken(cfg.JWTSecret, cfg.JWTAlg, u.ID, u.Email, time.Now().UTC(), time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

// decodeBody unmarshals a finished apitest response body into out.
func decodeBody(t *testing.T, res *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}
