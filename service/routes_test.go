package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	config := &Config{
		Environment: "test",
		Port:        "0",
		BaseURL:     "http://localhost:8000",
	}
	config.Email.From = "Nernst Solution <orders@nernstsolution.com>"
	config.Email.ContactEmail = "contact@nernstsolution.com"

	e := echo.New()
	New(config).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	e := setupTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health check", http.MethodGet, "/health", http.StatusOK},
		{"list products", http.MethodGet, "/api/products", http.StatusOK},
		{"list products by category", http.MethodGet, "/api/products?category=hardware", http.StatusOK},
		{"get product", http.MethodGet, "/api/products/membrane-electrode-assembly", http.StatusOK},
		{"get unknown product", http.MethodGet, "/api/products/not-a-product", http.StatusNotFound},
		{"get cart", http.MethodGet, "/api/cart", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHealthBody(t *testing.T) {
	e := setupTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestListProductsFiltersByCategory(t *testing.T) {
	e := setupTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/products?category=test-stand", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "test-stand", p["category"])
	}
}

// Without RESEND_API_KEY the lead endpoints must refuse the submission
// instead of silently dropping it.
func TestContactMessageWithoutEmailConfig(t *testing.T) {
	e := setupTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/send-contact-message",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","subject":"Hi","message":"Hello"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email service not configured", body["error"])
}

func TestQuoteRequestWithoutEmailConfig(t *testing.T) {
	e := setupTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/send-quote-request",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","productId":"600w-pem-test-stand"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email service not configured", body["error"])
}

func TestCreateCheckoutSessionEmptyBody(t *testing.T) {
	e := setupTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/create-checkout-session", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookRejectsGarbage(t *testing.T) {
	e := setupTestServer(t)

	// No webhook secret configured in tests, so the body is parsed directly
	rec := doRequest(e, http.MethodPost, "/api/stripe-webhook", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
