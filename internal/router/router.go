package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/recipe-hub/internal/handler" // handlers implement the endpoint logic
)

// RegisterRoutes registers routes that never require authentication.
// Currently it exposes only a health check for load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints under /auth.
// Both are unauthenticated: each returns a freshly issued access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/token", a.Login)
}

// RegisterUsers registers the profile and user-listing endpoints under
// /users.  The listing is deliberately public; the /me endpoints run the
// bearer-token middleware per route.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, auth echo.MiddlewareFunc) {
	g := e.Group("/users")
	g.GET("/", u.List)
	g.GET("/me", u.Me, auth)
	g.PATCH("/me", u.UpdateMe, auth)
	g.DELETE("/me", u.DeleteMe, auth)
}

// RegisterRecipes registers the recipe CRUD endpoints under /recipes.
// Browsing (list, get) is public; every mutation and the /mine listing
// require a valid bearer token.  The static /mine route is registered
// alongside /:id — echo matches static segments before parameters.
func RegisterRecipes(e *echo.Echo, r *handler.RecipeHandler, auth echo.MiddlewareFunc) {
	g := e.Group("/recipes")
	g.POST("/", r.Create, auth)
	g.GET("/", r.List)
	g.GET("/mine", r.Mine, auth)
	g.GET("/:id", r.Get)
	g.PATCH("/:id", r.Update, auth)
	g.DELETE("/:id", r.Delete, auth)
}
