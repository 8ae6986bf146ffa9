package router_test

import (
	"net/http"
	"testing"

	"warehouse/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obtainPair(t *testing.T, env *testEnv) (access, refresh string) {
	t.Helper()
	w := env.do(http.MethodPost, "/api/token/", map[string]string{"username": testUser, "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	return body["access"].(string), body["refresh"].(string)
}

func TestTokenObtain(t *testing.T) {
	env := setupTestEnv(t)

	access, refresh := obtainPair(t, env)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	w := env.do(http.MethodPost, "/api/token/", map[string]string{"username": testUser, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No active account found with the given credentials", decode(t, w)["detail"])

	w = env.do(http.MethodPost, "/api/token/", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := fieldErrors(t, w)
	assert.Equal(t, []string{"This field is required."}, fields["username"])
	assert.Equal(t, []string{"This field is required."}, fields["password"])
}

func TestTokenRefresh(t *testing.T) {
	env := setupTestEnv(t)
	access, refresh := obtainPair(t, env)

	w := env.do(http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refresh})
	require.Equal(t, http.StatusOK, w.Code)
	newAccess := decode(t, w)["access"].(string)
	_, err := env.svcs.Tokens.Parse(newAccess, token.Access)
	require.NoError(t, err)

	// The fresh access token opens resource routes.
	w = env.doWithToken(http.MethodGet, "/api/v1/suppliers/", nil, newAccess)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": access})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Token is invalid or expired", body["detail"])
	assert.Equal(t, "token_not_valid", body["code"])

	env.store.RefreshTokens.Revoke()
	w = env.do(http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenVerify(t *testing.T) {
	env := setupTestEnv(t)
	access, _ := obtainPair(t, env)

	w := env.do(http.MethodPost, "/api/token/verify/", map[string]string{"token": access})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/token/verify/", map[string]string{"token": "garbage"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token_not_valid", decode(t, w)["code"])
}

func TestResourcesRequireAuthentication(t *testing.T) {
	env := setupTestEnv(t)
	_, refresh := obtainPair(t, env)

	paths := []string{
		"/api/v1/",
		"/api/v1/suppliers/",
		"/api/v1/categories/",
		"/api/v1/products/",
		"/api/v1/product-quantities/",
		"/api/v1/orders/",
		"/api/v1/order-items/",
		"/api/v1/warehouses/",
		"/api/v1/warehouse-items/",
		"/api/v1/items/1/",
		"/api/v1/order/1/",
		"/api/v1/suppliers/1/",
	}
	for _, p := range paths {
		w := env.do(http.MethodGet, p, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, p)
		assert.Equal(t, "Authentication credentials were not provided.", decode(t, w)["detail"], p)
	}

	cases := map[string]string{
		"garbage":       "not-a-jwt",
		"refresh token": refresh,
	}
	for name, tok := range cases {
		w := env.doWithToken(http.MethodGet, "/api/v1/suppliers/", nil, tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Equal(t, "token_not_valid", decode(t, w)["code"], name)
	}

	w := env.doWithToken(http.MethodPost, "/api/v1/suppliers/", map[string]string{"name": "x"}, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.store.Suppliers.Len(), "no data access before authentication")
}

func TestAuthorizationHeaderScheme(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doWithHeader(http.MethodGet, "/api/v1/suppliers/", "Authorization", "Token "+env.token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.doWithHeader(http.MethodGet, "/api/v1/suppliers/", "Authorization", "Bearer "+env.token)
	assert.Equal(t, http.StatusOK, w.Code)
}
