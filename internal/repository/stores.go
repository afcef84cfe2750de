package repository

import (
	"context"

	"github.com/iliyamo/recipe-hub/internal/model"
)

// UserStore is the persistence contract for user records.  Handlers and
// middleware depend on this interface so tests can swap the MySQL
// implementation for the in-memory one.
type UserStore interface {
	// Create inserts a new user.  The password hash is derived by the
	// caller; repositories store plain records and never see raw
	// passwords.  Returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, email, passwordHash string, fullName *string) (model.User, error)
	// GetByEmail fetches a user by normalized (lower-cased, trimmed)
	// email.  Returns ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// GetByID fetches a user by id.  Returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id uint64) (model.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)
	// Update patches the user's display name and/or password hash.  A nil
	// field is left untouched.  Returns the updated record.
	Update(ctx context.Context, id uint64, fullName, passwordHash *string) (model.User, error)
	// Delete removes the user.  Owned recipes are deleted in cascade.
	Delete(ctx context.Context, id uint64) error
}

// RecipePatch carries the fields of a partial recipe update.  A nil field
// means "leave the current value alone"; there is no way to null out a
// field through a patch, matching the public API contract.
type RecipePatch struct {
	Title        *string
	Description  *string
	Ingredients  *string
	Instructions *string
}

// RecipeStore is the persistence contract for recipe records.
type RecipeStore interface {
	// Create inserts a recipe owned by ownerID and returns the stored row.
	Create(ctx context.Context, ownerID uint64, title string, description, ingredients, instructions *string) (model.Recipe, error)
	// GetByID fetches a recipe by id.  Returns ErrRecipeNotFound when absent.
	GetByID(ctx context.Context, id uint64) (model.Recipe, error)
	// List returns all recipes, newest first.
	List(ctx context.Context) ([]model.Recipe, error)
	// ListByOwner returns the recipes owned by one user, newest first.
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.Recipe, error)
	// Update applies a partial patch and refreshes updated_at.  The owner
	// reference is immutable.  Returns ErrRecipeNotFound when absent.
	Update(ctx context.Context, id uint64, patch RecipePatch) (model.Recipe, error)
	// Delete removes the recipe immediately.  Returns ErrRecipeNotFound
	// when absent.
	Delete(ctx context.Context, id uint64) error
}
