package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/recipe-hub/internal/model"
)

// RecipeRepo is the MySQL-backed RecipeStore.
type RecipeRepo struct{ DB *sql.DB }

func NewRecipeRepo(db *sql.DB) *RecipeRepo { return &RecipeRepo{DB: db} }

var _ RecipeStore = (*RecipeRepo)(nil)

const recipeCols = "id,owner_id,title,description,ingredients,instructions,created_at,updated_at"

// Create inserts a recipe and returns the stored row with its generated id
// and timestamps.
func (r *RecipeRepo) Create(ctx context.Context, ownerID uint64, title string, description, ingredients, instructions *string) (model.Recipe, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO recipes (owner_id, title, description, ingredients, instructions) VALUES (?,?,?,?,?)",
		ownerID, title, description, ingredients, instructions)
	if err != nil {
		return model.Recipe{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Recipe{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a recipe by id.
func (r *RecipeRepo) GetByID(ctx context.Context, id uint64) (model.Recipe, error) {
	var rec model.Recipe
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+recipeCols+" FROM recipes WHERE id=? LIMIT 1", id).
		Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description, &rec.Ingredients,
			&rec.Instructions, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return rec, err
}

// List returns all recipes ordered newest first.
func (r *RecipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	return r.queryRecipes(ctx, "SELECT "+recipeCols+" FROM recipes ORDER BY id DESC")
}

// ListByOwner returns one user's recipes ordered newest first.
func (r *RecipeRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Recipe, error) {
	return r.queryRecipes(ctx,
		"SELECT "+recipeCols+" FROM recipes WHERE owner_id=? ORDER BY id DESC", ownerID)
}

// Update applies a partial patch.  COALESCE keeps every column whose patch
// field is nil; updated_at refreshes on any write.  owner_id is never part
// of the statement.
func (r *RecipeRepo) Update(ctx context.Context, id uint64, patch RecipePatch) (model.Recipe, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE recipes SET
			title=COALESCE(?,title),
			description=COALESCE(?,description),
			ingredients=COALESCE(?,ingredients),
			instructions=COALESCE(?,instructions),
			updated_at=CURRENT_TIMESTAMP
		WHERE id=?`,
		patch.Title, patch.Description, patch.Ingredients, patch.Instructions, id)
	if err != nil {
		return model.Recipe{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op patch;
		// the follow-up SELECT distinguishes the two.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return model.Recipe{}, getErr
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a recipe by id.
func (r *RecipeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM recipes WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepo) queryRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Recipe
	for rows.Next() {
		var rec model.Recipe
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description,
			&rec.Ingredients, &rec.Instructions, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
