package handler // handler defines http handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/recipe-hub/internal/middleware"
	"github.com/iliyamo/recipe-hub/internal/model"
)

// maxPageSize caps page_size on list endpoints so a single request cannot
// ask for an unbounded page.
const maxPageSize = 100

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

// userOut is the public shape of a user.  The password hash never leaves
// the repository layer.
type userOut struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserOut(u model.User) userOut {
	return userOut{ID: u.ID, Email: u.Email, FullName: u.FullName, CreatedAt: u.CreatedAt}
}

// recipeOut is the public shape of a recipe.
type recipeOut struct {
	ID           uint64    `json:"id"`
	OwnerID      uint64    `json:"owner_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *string   `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRecipeOut(r model.Recipe) recipeOut {
	return recipeOut{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// currentUser pulls the authenticated user injected by the JWT middleware.
func currentUser(c echo.Context) (model.User, bool) {
	return middleware.CurrentUser(c)
}

// pageParams reads the 1-based page and page_size query parameters with
// their defaults.  Values below 1 are left for Paginate to clamp; sizes
// above maxPageSize are capped here.
func pageParams(c echo.Context) (page, pageSize int) {
	page = intParam(c.QueryParam("page"), 1)
	pageSize = intParam(c.QueryParam("page_size"), 10)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
