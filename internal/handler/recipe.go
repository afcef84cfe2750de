package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/recipe-hub/internal/model"
	"github.com/iliyamo/recipe-hub/internal/repository"
	"github.com/iliyamo/recipe-hub/internal/utils"
)

// RecipeHandler bundles dependencies for the recipe CRUD endpoints.
type RecipeHandler struct {
	Recipes repository.RecipeStore
}

func NewRecipeHandler(recipes repository.RecipeStore) *RecipeHandler {
	return &RecipeHandler{Recipes: recipes}
}

type createRecipeReq struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

type updateRecipeReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

// Create handles POST /recipes/ and creates a recipe owned by the caller.
func (h *RecipeHandler) Create(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRecipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rec, err := h.Recipes.Create(ctx, u.ID, req.Title, req.Description, req.Ingredients, req.Instructions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create recipe failed"})
	}
	return c.JSON(http.StatusCreated, toRecipeOut(rec))
}

// List handles GET /recipes/ and returns all recipes, paginated.  No auth
// required; public browsing is part of the contract.
func (h *RecipeHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	recipes, err := h.Recipes.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return h.paginated(c, recipes)
}

// Mine handles GET /recipes/mine and returns only the caller's recipes.
func (h *RecipeHandler) Mine(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	recipes, err := h.Recipes.ListByOwner(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return h.paginated(c, recipes)
}

// Get handles GET /recipes/:id.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rec, err := h.Recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toRecipeOut(rec))
}

// Update handles PATCH /recipes/:id.  Only fields present in the body
// overwrite stored values; the owner reference never changes.
func (h *RecipeHandler) Update(c echo.Context) error {
	rec, ok := h.ownedRecipe(c)
	if !ok {
		return nil
	}
	var req updateRecipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title cannot be empty"})
		}
		req.Title = &t
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	updated, err := h.Recipes.Update(ctx, rec.ID, repository.RecipePatch{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toRecipeOut(updated))
}

// Delete handles DELETE /recipes/:id under the same ownership guard.
func (h *RecipeHandler) Delete(c echo.Context) error {
	rec, ok := h.ownedRecipe(c)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Recipes.Delete(ctx, rec.ID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ownedRecipe resolves :id and enforces the mutation guard, writing the
// error response itself when the guard fails.  Existence is checked before
// ownership on purpose: a missing recipe is a 404 for everyone, and only an
// existing recipe owned by someone else is a 403.  Reversing the order
// would change what a probing caller can learn.
func (h *RecipeHandler) ownedRecipe(c echo.Context) (model.Recipe, bool) {
	u, ok := currentUser(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Recipe{}, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return model.Recipe{}, false
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rec, err := h.Recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "recipe not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.Recipe{}, false
	}
	if rec.OwnerID != u.ID {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "not the owner"})
		return model.Recipe{}, false
	}
	return rec, true
}

func (h *RecipeHandler) paginated(c echo.Context, recipes []model.Recipe) error {
	out := make([]recipeOut, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeOut(r))
	}
	page, size := pageParams(c)
	return c.JSON(http.StatusOK, utils.Paginate(out, page, size))
}
