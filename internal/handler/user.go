package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/recipe-hub/internal/repository"
	"github.com/iliyamo/recipe-hub/internal/utils"
)

// UserHandler bundles dependencies for the profile and user-listing
// endpoints.
type UserHandler struct {
	Users repository.UserStore
}

func NewUserHandler(users repository.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

type updateMeReq struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, toUserOut(u))
}

// UpdateMe partially updates the profile: only supplied fields change.
// An empty-string password is treated as absent rather than hashed.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateMeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var hash *string
	if req.Password != nil && *req.Password != "" {
		// Re-derive with the account email as salt so login keeps working
		// against the same scheme.
		hp := utils.HashPassword(*req.Password, u.Email)
		hash = &hp
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	updated, err := h.Users.Update(ctx, u.ID, req.FullName, hash)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toUserOut(updated))
}

// DeleteMe removes the account; the store cascades deletion of every
// recipe the user owns.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Users.Delete(ctx, u.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns all users, paginated.  The endpoint is deliberately public:
// restricting it would be a contract change, not a fix.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]userOut, 0, len(users))
	for _, u := range users {
		out = append(out, toUserOut(u))
	}
	page, size := pageParams(c)
	return c.JSON(http.StatusOK, utils.Paginate(out, page, size))
}
