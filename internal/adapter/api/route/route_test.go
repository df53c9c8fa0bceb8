package route

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/controller"
	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/adapter/repository"
	"github.com/hugohenrick/tuckshop/internal/seed"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/auth"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := repository.NewStore(repository.NewMemoryBackend())
	_, err := seed.EnsureInitialData(context.Background(), st, logger.NewNopLogger())
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService("route-test", time.Hour)
	require.NoError(t, err)

	log := logger.NewNopLogger()
	opts := []service.Option{service.WithLogger(log), service.WithClock(service.ClockIn(time.UTC))}
	employees := service.NewEmployeeService(st, opts...)
	reports := controller.NewReportController(service.NewReportService(st, opts...), time.UTC, log)
	authRequired := auth.JWTAuthMiddleware(jwtService)

	r := gin.New()
	api := r.Group("/api/v1")
	SetupAuthRoutes(api, controller.NewAuthController(service.NewAuthService(employees, jwtService), employees, log), authRequired)
	RegisterProductRoutes(api, controller.NewProductController(service.NewCatalogService(st, opts...), log), authRequired)
	RegisterEmployeeRoutes(api, controller.NewEmployeeController(employees, log), authRequired)
	RegisterSaleRoutes(api, controller.NewCheckoutController(service.NewCheckoutService(st, opts...), log), reports, authRequired)
	RegisterReportRoutes(api, reports, authRequired)
	return r
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, pin string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"pin": pin})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"pin": "9999"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"pin": "12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := login(t, r, "1111")
	w = do(r, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"e2"`)
	assert.NotContains(t, w.Body.String(), `"pin"`)
}

func TestCheckout(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "1111")

	w := do(r, http.MethodPost, "/api/v1/checkout", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"items":          []gin.H{{"product_id": "p3", "quantity": 2}},
		"payment_method": "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"employee_id":"e2"`)

	// chocolate é restrito para o aluno s1
	w = do(r, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"items":          []gin.H{{"product_id": "p4", "quantity": 1}},
		"student_id":     "s1",
		"payment_method": "wallet",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var errRes dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errRes))
	assert.NotEmpty(t, errRes.Kind)

	w = do(r, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"items":          []gin.H{{"product_id": "ghost", "quantity": 1}},
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"items":          []gin.H{{"product_id": "p3", "quantity": 10001}},
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// operador de caixa não pode dar desconto
	w = do(r, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"items":          []gin.H{{"product_id": "p3", "quantity": 1}},
		"payment_method": "cash",
		"discount":       "0.20",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, r, "0000")
	w = do(r, http.MethodPost, "/api/v1/checkout", admin, gin.H{
		"items":          []gin.H{{"product_id": "p3", "quantity": 1}},
		"payment_method": "cash",
		"discount":       "0.20",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestPermissions(t *testing.T) {
	r := setupRouter(t)
	cashier := login(t, r, "1111")
	admin := login(t, r, "0000")

	w := do(r, http.MethodGet, "/api/v1/employees", cashier, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/api/v1/employees", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/products", cashier, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/reports/dashboard", cashier, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/api/v1/reports/dashboard", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/transactions/export", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}
