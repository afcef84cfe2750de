// Package repository defines the persistence layer: store interfaces, their
// MySQL implementations and the sentinel errors shared across them.  The
// sentinel values let handlers distinguish failure scenarios without
// inspecting driver errors: ErrEmailExists becomes a 400 at the boundary,
// the not-found values become 404s (or a 401 when a token's subject has
// vanished).
package repository

import "errors"

// ErrEmailExists is returned when a user cannot be created because the
// email address is already registered.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// ErrRecipeNotFound is returned when no recipe matches the given id.
var ErrRecipeNotFound = errors.New("recipe not found")
