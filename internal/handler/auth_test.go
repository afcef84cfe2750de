package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	e, _, _ := newTestAPI(t)

	// Register returns a fresh bearer token.
	res := apitest.New().
		Handler(e).
		Post("/auth/register").
		JSON(`{"email":"alice@example.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.token_type", "bearer")).
		Assert(jsonpath.Present("$.access_token")).
		End()

	var reg struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, res.Response, &reg)
	require.NotEmpty(t, reg.AccessToken)

	// The token from registration resolves to the new account.
	apitest.New().
		Handler(e).
		Get("/users/me").
		Header("Authorization", "Bearer "+reg.AccessToken).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.email", "alice@example.com")).
		End()

	// Logging in with the same credentials issues another valid token.
	res = apitest.New().
		Handler(e).
		Post("/auth/token").
		JSON(`{"email":"alice@example.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.token_type", "bearer")).
		End()

	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, res.Response, &login)
	require.NotEmpty(t, login.AccessToken)

	apitest.New().
		Handler(e).
		Get("/users/me").
		Header("Authorization", "Bearer "+login.AccessToken).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.email", "alice@example.com")).
		End()
}

func TestRegisterDuplicateEmailIsBadRequest(t *testing.T) {
	e, store, _ := newTestAPI(t)
	seedUser(t, store, "alice@example.com", "secret1")

	// Same address with different casing: still taken, still a 400.
	apitest.New().
		Handler(e).
		Post("/auth/register").
		JSON(`{"email":"Alice@Example.COM","password":"other"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", "email already registered")).
		End()
}

func TestRegisterMissingFields(t *testing.T) {
	e, _, _ := newTestAPI(t)

	for _, body := range []string{
		`{}`,
		`{"email":"a@b.com"}`,
		`{"password":"pw"}`,
	} {
		apitest.New().
			Handler(e).
			Post("/auth/register").
			JSON(body).
			Expect(t).
			Status(http.StatusBadRequest).
			End()
	}
}

func TestLoginFailsUniformly(t *testing.T) {
	e, store, _ := newTestAPI(t)
	seedUser(t, store, "alice@example.com", "secret1")

	// Wrong password and unknown account are indistinguishable.
	for _, body := range []string{
		`{"email":"alice@example.com","password":"wrong"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
	} {
		apitest.New().
			Handler(e).
			Post("/auth/token").
			JSON(body).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal("$.error", "invalid credentials")).
			End()
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	e, store, cfg := newTestAPI(t)
	u := seedUser(t, store, "alice@example.com", "secret1")

	// No header at all.
	apitest.New().
		Handler(e).
		Get("/users/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// Garbage token.
	apitest.New().
		Handler(e).
		Get("/users/me").
		Header("Authorization", "Bearer not-a-token").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// Valid token whose subject no longer exists.
	tok := bearer(t, cfg, u)
	require.NoError(t, store.Users().Delete(context.Background(), u.ID))
	apitest.New().
		Handler(e).
		Get("/users/me").
		Header("Authorization", tok).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}
