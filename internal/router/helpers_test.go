package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"warehouse/internal/config"
	"warehouse/internal/repository/repotest"
	"warehouse/internal/router"
	"warehouse/internal/service"
	"warehouse/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

const (
	testUser     = "admin"
	testPassword = "s3cret-pass"
)

// ── Test environment over in-memory repositories ─────────────────────────────

type testEnv struct {
	t      *testing.T
	engine *gin.Engine
	store  *repotest.Store
	svcs   *router.Services
	token  string // access token for testUser
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                 8000,
		Env:                  "test",
		JWTSecret:            "test-secret-key",
		AccessTokenLifetime:  5 * time.Minute,
		RefreshTokenLifetime: 24 * time.Hour,
	}
}

func memoryServices(cfg *config.Config, store *repotest.Store) *router.Services {
	tx := repotest.Transactor{}
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenLifetime, cfg.RefreshTokenLifetime)
	return &router.Services{
		Auth:              service.NewAuthService(store.Users, store.RefreshTokens, tokens),
		Tokens:            tokens,
		Suppliers:         service.NewSupplierService(store.Suppliers, tx),
		Categories:        service.NewCategoryService(store.Categories, tx),
		Products:          service.NewProductService(store.Products, store.Categories, store.Suppliers, tx),
		ProductQuantities: service.NewProductQuantityService(store.ProductQuantities, store.Products, tx),
		Orders:            service.NewOrderService(store.Orders, tx),
		OrderItems:        service.NewOrderItemService(store.OrderItems, store.Orders, store.ProductQuantities, tx),
		Warehouses:        service.NewWarehouseService(store.Warehouses, tx),
		WarehouseItems:    service.NewWarehouseItemService(store.WarehouseItems, store.Warehouses, store.ProductQuantities, tx),
	}
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := testConfig()
	store := repotest.NewStore()
	svcs := memoryServices(cfg, store)

	_, err := svcs.Auth.CreateUser(context.Background(), testUser, testPassword)
	require.NoError(t, err)

	env := &testEnv{
		t:      t,
		engine: router.NewWithServices(cfg, svcs, nil, nil),
		store:  store,
		svcs:   svcs,
	}

	w := env.do(http.MethodPost, "/api/token/", map[string]string{"username": testUser, "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.Access)
	env.token = pair.Access
	return env
}

// ── Request helpers ──────────────────────────────────────────────────────────

// do sends an unauthenticated request. body may be nil, a string (sent
// verbatim) or any value encoded as JSON.
func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	return e.doWithToken(method, path, body, "")
}

// call sends a request authenticated as testUser.
func (e *testEnv) call(method, path string, body any) *httptest.ResponseRecorder {
	return e.doWithToken(method, path, body, e.token)
}

func (e *testEnv) doWithToken(method, path string, body any, tok string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(e.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// doWithHeader sends a bodiless request carrying one extra header.
func (e *testEnv) doWithHeader(method, path, key, value string) *httptest.ResponseRecorder {
	e.t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(key, value)
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func newAuthedRequest(t *testing.T, e *testEnv, method, path string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+e.token)
	return req
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// create POSTs body to the collection and returns the new id.
func (e *testEnv) create(resource string, body any) uint {
	e.t.Helper()
	w := e.call(http.MethodPost, "/api/v1/"+resource+"/", body)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(e.t, w)["id"].(float64))
}

func itemPath(resource string, id uint) string {
	return fmt.Sprintf("/api/v1/%s/%d/", resource, id)
}

// fieldErrors extracts the per-field messages of a validation failure.
func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var env struct {
		Detail string              `json:"detail"`
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Fields
}
