package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/recipe-hub/internal/model"
)

// MemoryStore is an in-memory stand-in for MySQL used by the handler tests
// so they can exercise the full HTTP surface without a database.  It
// mirrors the semantics callers rely on: unique emails, cascading deletes,
// COALESCE-style patches and a refreshed updated_at on every recipe
// mutation.  Users() and Recipes() expose the two store interfaces over
// the same shared state.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[uint64]model.User
	recipes      map[uint64]model.Recipe
	nextUserID   uint64
	nextRecipeID uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uint64]model.User),
		recipes:      make(map[uint64]model.Recipe),
		nextUserID:   1,
		nextRecipeID: 1,
	}
}

// Users returns the UserStore view of the shared state.
func (m *MemoryStore) Users() UserStore { return &memoryUsers{s: m} }

// Recipes returns the RecipeStore view of the shared state.
func (m *MemoryStore) Recipes() RecipeStore { return &memoryRecipes{s: m} }

type memoryUsers struct{ s *MemoryStore }
type memoryRecipes struct{ s *MemoryStore }

var (
	_ UserStore   = (*memoryUsers)(nil)
	_ RecipeStore = (*memoryRecipes)(nil)
)

// ----- UserStore -----

func (v *memoryUsers) Create(ctx context.Context, email, passwordHash string, fullName *string) (model.User, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	email = normalizeEmail(email)
	for _, u := range m.users {
		if u.Email == email {
			return model.User{}, ErrEmailExists
		}
	}
	u := model.User{
		ID:           m.nextUserID,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     copyPtr(fullName),
		CreatedAt:    time.Now().UTC(),
	}
	m.nextUserID++
	m.users[u.ID] = u
	return u, nil
}

func (v *memoryUsers) GetByEmail(ctx context.Context, email string) (model.User, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	email = normalizeEmail(email)
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (v *memoryUsers) GetByID(ctx context.Context, id uint64) (model.User, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (v *memoryUsers) List(ctx context.Context) ([]model.User, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (v *memoryUsers) Update(ctx context.Context, id uint64, fullName, passwordHash *string) (model.User, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	if fullName != nil {
		u.FullName = copyPtr(fullName)
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	m.users[id] = u
	return u, nil
}

func (v *memoryUsers) Delete(ctx context.Context, id uint64) error {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, id)
	// Cascade: drop every recipe owned by the user, like the FK does.
	for rid, r := range m.recipes {
		if r.OwnerID == id {
			delete(m.recipes, rid)
		}
	}
	return nil
}

// ----- RecipeStore -----

func (v *memoryRecipes) Create(ctx context.Context, ownerID uint64, title string, description, ingredients, instructions *string) (model.Recipe, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[ownerID]; !ok {
		return model.Recipe{}, ErrUserNotFound
	}
	now := time.Now().UTC()
	r := model.Recipe{
		ID:           m.nextRecipeID,
		OwnerID:      ownerID,
		Title:        title,
		Description:  copyPtr(description),
		Ingredients:  copyPtr(ingredients),
		Instructions: copyPtr(instructions),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.nextRecipeID++
	m.recipes[r.ID] = r
	return r, nil
}

func (v *memoryRecipes) GetByID(ctx context.Context, id uint64) (model.Recipe, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[id]
	if !ok {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return r, nil
}

func (v *memoryRecipes) List(ctx context.Context) ([]model.Recipe, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (v *memoryRecipes) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Recipe, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Recipe, 0)
	for _, r := range m.recipes {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (v *memoryRecipes) Update(ctx context.Context, id uint64, patch RecipePatch) (model.Recipe, error) {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[id]
	if !ok {
		return model.Recipe{}, ErrRecipeNotFound
	}
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Description != nil {
		r.Description = copyPtr(patch.Description)
	}
	if patch.Ingredients != nil {
		r.Ingredients = copyPtr(patch.Ingredients)
	}
	if patch.Instructions != nil {
		r.Instructions = copyPtr(patch.Instructions)
	}
	now := time.Now().UTC()
	if !now.After(r.UpdatedAt) {
		// Two writes inside the same clock tick still have to move
		// updated_at forward.
		now = r.UpdatedAt.Add(time.Nanosecond)
	}
	r.UpdatedAt = now
	m.recipes[id] = r
	return r, nil
}

func (v *memoryRecipes) Delete(ctx context.Context, id uint64) error {
	m := v.s
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return ErrRecipeNotFound
	}
	delete(m.recipes, id)
	return nil
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
