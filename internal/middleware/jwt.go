package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"  // context bounds the user lookup backing each request
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming
    "time"     // clock injection for token verification and DB timeouts

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/recipe-hub/internal/model"      // model.User stored in the request context
    "github.com/iliyamo/recipe-hub/internal/repository" // user lookups by token subject
    "github.com/iliyamo/recipe-hub/internal/utils"      // token verification
)

// userContextKey is the echo context key under which the authenticated
// model.User is stored for handlers.
const userContextKey = "current_user"

// JWTAuth returns an Echo middleware that resolves the acting identity from
// a Bearer access token.  It verifies the token against the signing secret,
// parses the subject claim into a user id and loads that user from the
// store.  Every failure mode — missing header, malformed token, bad
// signature, expired token, or a subject that no longer exists — collapses
// into the same 401 response so callers cannot probe which check failed.
// On success the loaded user is stored in the context for CurrentUser.
func JWTAuth(secret string, users repository.UserStore) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header is "Bearer " followed by the compact token.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Verification is pure computation against the current clock;
            // no I/O happens until the subject lookup below.
            claims, err := utils.VerifyToken(raw, secret, time.Now().UTC())
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            uid, err := claims.UserID()
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }

            // A token can outlive its account; a vanished subject is just
            // as unauthorized as a bad signature.
            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()
            u, err := users.GetByID(ctx, uid)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }

            c.Set(userContextKey, u)
            return next(c)
        }
    }
}

// CurrentUser returns the authenticated user stored by JWTAuth.  The ok
// result is false on routes that never passed through the middleware.
func CurrentUser(c echo.Context) (model.User, bool) {
    u, ok := c.Get(userContextKey).(model.User)
    return u, ok
}
