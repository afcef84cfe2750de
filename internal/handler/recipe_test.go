package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeRequiresAuth(t *testing.T) {
	e, _, _ := newTestAPI(t)

	apitest.New().
		Handler(e).
		Post("/recipes/").
		JSON(`{"title":"Soup"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestCreateAndGetRecipe(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")

	apitest.New().
		Handler(e).
		Post("/recipes/").
		Header("Authorization", bearer(t, cfg, alice)).
		JSON(`{"title":"Soup","description":"warm and salty"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.title", "Soup")).
		Assert(jsonpath.Equal("$.owner_id", float64(alice.ID))).
		Assert(jsonpath.Equal("$.description", "warm and salty")).
		End()

	// Reading back requires no authentication.
	apitest.New().
		Handler(e).
		Get("/recipes/1").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Soup")).
		End()
}

func TestCreateRecipeRequiresTitle(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")

	apitest.New().
		Handler(e).
		Post("/recipes/").
		Header("Authorization", bearer(t, cfg, alice)).
		JSON(`{"title":"   ","description":"no title"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestOwnershipGuardChecksExistenceFirst(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")
	bob := seedUser(t, store, "bob@example.com", "secret2")

	rec, err := store.Recipes().Create(context.Background(), alice.ID, "Soup", nil, nil, nil)
	require.NoError(t, err)

	// A missing recipe is 404 for everyone, even the would-be owner.
	apitest.New().
		Handler(e).
		Patch("/recipes/999").
		Header("Authorization", bearer(t, cfg, bob)).
		JSON(`{"title":"Hijacked"}`).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	// An existing recipe owned by someone else is 403, never 404.
	apitest.New().
		Handler(e).
		Patch(fmt.Sprintf("/recipes/%d", rec.ID)).
		Header("Authorization", bearer(t, cfg, bob)).
		JSON(`{"title":"Hijacked"}`).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.New().
		Handler(e).
		Delete(fmt.Sprintf("/recipes/%d", rec.ID)).
		Header("Authorization", bearer(t, cfg, bob)).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	// The owner still sees the recipe untouched.
	apitest.New().
		Handler(e).
		Get(fmt.Sprintf("/recipes/%d", rec.ID)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Soup")).
		End()
}

func TestPatchRecipeOnlyTouchesSuppliedFields(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")

	desc, ingr, instr := "a soup", "water, salt", "boil it"
	rec, err := store.Recipes().Create(context.Background(), alice.ID, "Soup", &desc, &ingr, &instr)
	require.NoError(t, err)

	apitest.New().
		Handler(e).
		Patch(fmt.Sprintf("/recipes/%d", rec.ID)).
		Header("Authorization", bearer(t, cfg, alice)).
		JSON(`{"title":"Better Soup"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Better Soup")).
		Assert(jsonpath.Equal("$.description", "a soup")).
		Assert(jsonpath.Equal("$.ingredients", "water, salt")).
		Assert(jsonpath.Equal("$.instructions", "boil it")).
		Assert(jsonpath.Equal("$.owner_id", float64(alice.ID))).
		End()
}

func TestDeleteRecipeByOwner(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")

	rec, err := store.Recipes().Create(context.Background(), alice.ID, "Soup", nil, nil, nil)
	require.NoError(t, err)

	apitest.New().
		Handler(e).
		Delete(fmt.Sprintf("/recipes/%d", rec.ID)).
		Header("Authorization", bearer(t, cfg, alice)).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(e).
		Get(fmt.Sprintf("/recipes/%d", rec.ID)).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}

func TestGetRecipeInvalidAndMissingIDs(t *testing.T) {
	e, _, _ := newTestAPI(t)

	apitest.New().
		Handler(e).
		Get("/recipes/999").
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(e).
		Get("/recipes/not-a-number").
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestListRecipesPublicWithPagination(t *testing.T) {
	e, store, _ := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")

	for i := 0; i < 3; i++ {
		_, err := store.Recipes().Create(context.Background(), alice.ID,
			fmt.Sprintf("Recipe %d", i+1), nil, nil, nil)
		require.NoError(t, err)
	}

	apitest.New().
		Handler(e).
		Get("/recipes/").
		Query("page", "1").
		Query("page_size", "2").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total", float64(3))).
		Assert(jsonpath.Len("$.items", 2)).
		Assert(jsonpath.Equal("$.page", float64(1))).
		Assert(jsonpath.Equal("$.page_size", float64(2))).
		End()

	// A page past the end keeps the total but carries no items.
	apitest.New().
		Handler(e).
		Get("/recipes/").
		Query("page", "5").
		Query("page_size", "10").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total", float64(3))).
		Assert(jsonpath.Len("$.items", 0)).
		End()

	// Absurdly large page numbers behave like any other beyond-range page.
	apitest.New().
		Handler(e).
		Get("/recipes/").
		Query("page", "4611686018427387904").
		Query("page_size", "100").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total", float64(3))).
		Assert(jsonpath.Len("$.items", 0)).
		End()
}

func TestMineListsOnlyCallersRecipes(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	alice := seedUser(t, store, "alice@example.com", "secret1")
	bob := seedUser(t, store, "bob@example.com", "secret2")

	for _, title := range []string{"Soup", "Stew"} {
		_, err := store.Recipes().Create(context.Background(), alice.ID, title, nil, nil, nil)
		require.NoError(t, err)
	}
	_, err := store.Recipes().Create(context.Background(), bob.ID, "Bread", nil, nil, nil)
	require.NoError(t, err)

	apitest.New().
		Handler(e).
		Get("/recipes/mine").
		Header("Authorization", bearer(t, cfg, bob)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total", float64(1))).
		Assert(jsonpath.Equal("$.items[0].title", "Bread")).
		End()

	apitest.New().
		Handler(e).
		Get("/recipes/mine").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}
