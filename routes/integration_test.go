//go:build integration

package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"wedding-backend/config"
	"wedding-backend/routes"
)

const (
	adminEmail    = "admin@weddingbliss.com"
	adminPassword = "admin123"
)

// TestIntegrationFlow drives the wired router against a real MySQL.
func TestIntegrationFlow(t *testing.T) {
	ctx := context.Background()

	dsn, cleanup := setupMySQLContainer(t, ctx)
	defer cleanup()

	cfg := &config.Config{
		DB:                   config.DBConfig{URL: dsn, LogLevel: "silent"},
		JWTSecret:            "integration-test-secret",
		JWTTTL:               time.Hour,
		UploadDir:            t.TempDir(),
		CORSOrigins:          []string{"*"},
		RateLimit:            "1000-M",
		SweepInterval:        time.Hour,
		DefaultBookingAmount: decimal.NewFromInt(2000000),
		Company:              config.CompanyInfo{Name: "User Wedding Organizer"},
		AdminEmail:           adminEmail,
		AdminPassword:        adminPassword,
	}
	db, err := config.ConnectDatabase(cfg)
	require.NoError(t, err)

	app, err := routes.NewApp(cfg, db, nil)
	require.NoError(t, err)

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go app.Hub.Run(hubCtx)

	server := httptest.NewServer(app.Router)
	defer server.Close()

	// --- 1. Login with the seeded admin ---
	status, body := call(t, server, http.MethodPost, "/api/admin/login", map[string]any{"email": adminEmail, "password": adminPassword}, "")
	require.Equal(t, http.StatusOK, status, body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, _ = call(t, server, http.MethodPost, "/api/admin/login", map[string]any{"email": adminEmail, "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, server, http.MethodGet, "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// --- 2. Service create then get ---
	status, body = call(t, server, http.MethodPost, "/api/services", map[string]any{
		"name": "Paket Silver", "description": "Dekorasi dan rias", "base_price": "15000000",
	}, token)
	require.Equal(t, http.StatusOK, status, body)
	serviceID := idOf(t, body)

	status, body = call(t, server, http.MethodGet, fmt.Sprintf("/api/services/%d", serviceID), nil, "")
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Paket Silver", body["name"])
	assertDecimal(t, "15000000", body["base_price"])

	status, _ = call(t, server, http.MethodGet, "/api/services/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	// --- 3. Items, one of them linked to the service ---
	status, body = call(t, server, http.MethodPost, "/api/items", map[string]any{
		"name": "Dekorasi", "price": 5000000, "category": "decoration",
	}, token)
	require.Equal(t, http.StatusOK, status, body)
	decorID := idOf(t, body)

	status, body = call(t, server, http.MethodPost, "/api/items", map[string]any{
		"name": "MUA", "price": "1500000", "category": "makeup",
	}, token)
	require.Equal(t, http.StatusOK, status, body)

	status, body = call(t, server, http.MethodPost, fmt.Sprintf("/api/services/%d/items", serviceID), map[string]any{
		"item_id": decorID, "is_required": true,
	}, token)
	require.Equal(t, http.StatusOK, status, body)

	status, body = call(t, server, http.MethodPost, fmt.Sprintf("/api/services/%d/items", serviceID), map[string]any{
		"item_id": decorID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, status, body)

	// --- 4. Deleting an item used by a service is refused, every time ---
	for i := 0; i < 2; i++ {
		status, body = call(t, server, http.MethodDelete, fmt.Sprintf("/api/items/%d", decorID), nil, token)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Cannot delete item that is used in services. Deactivate it instead.", body["message"])
	}

	// --- 5. Orders accept any status string ---
	status, body = call(t, server, http.MethodPost, "/api/orders", map[string]any{
		"name": "Rina", "email": "rina@example.com", "phone": "0812", "wedding_date": "2026-12-12",
		"service_id": serviceID, "service_name": "Paket Silver",
		"selected_items": []map[string]any{{"name": "Dekorasi", "price": 5000000}},
		"total_amount":   15000000, "booking_amount": 3000000,
	}, "")
	require.Equal(t, http.StatusOK, status, body)
	orderID := idOf(t, body)

	status, _ = call(t, server, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), map[string]any{"status": "on-hold"}, token)
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, token)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "on-hold", body["status"])

	status, body = call(t, server, http.MethodGet, fmt.Sprintf("/api/orders/%d/invoice", orderID), nil, token)
	require.Equal(t, http.StatusOK, status, body)
	assertDecimal(t, "12000000", body["remaining"])

	// --- 6. Custom request pricing follows the live catalog ---
	status, body = call(t, server, http.MethodPost, "/api/custom-requests", map[string]any{
		"name": "Budi", "email": "budi@example.com", "phone": "0813", "wedding_date": "2027-01-20",
		"services": "Dekorasi, MUA, Band akustik",
	}, "")
	require.Equal(t, http.StatusOK, status, body)
	requestID := idOf(t, body)

	status, body = call(t, server, http.MethodGet, fmt.Sprintf("/api/custom-requests/%d", requestID), nil, token)
	require.Equal(t, http.StatusOK, status, body)
	assertDecimal(t, "6500000", body["total_amount"])
	lines, _ := body["items"].([]any)
	require.Len(t, lines, 3)
	band, _ := lines[2].(map[string]any)
	assert.Equal(t, "Band akustik", band["name"])
	assertDecimal(t, "0", band["price"])

	status, _ = call(t, server, http.MethodPut, fmt.Sprintf("/api/items/%d", decorID), map[string]any{
		"name": "Dekorasi", "price": 6000000, "category": "decoration",
	}, token)
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, server, http.MethodGet, fmt.Sprintf("/api/custom-requests/%d", requestID), nil, token)
	require.Equal(t, http.StatusOK, status, body)
	assertDecimal(t, "7500000", body["total_amount"])

	status, body = call(t, server, http.MethodPost, "/api/custom-requests/quote", map[string]any{"services": "mua"}, "")
	require.Equal(t, http.StatusOK, status, body)
	assertDecimal(t, "1500000", body["totalAmount"])

	// --- 7. Catalog matching runs on MySQL semantics ---
	status, body = call(t, server, http.MethodPost, "/api/items", map[string]any{
		"name": "dekorasi", "price": 4000000, "category": "decoration",
	}, token)
	require.Equal(t, http.StatusOK, status, body)
	for _, name := range []string{"Bunga abc", "Bunga éé"} {
		status, body = call(t, server, http.MethodPost, "/api/items", map[string]any{
			"name": name, "price": 300000, "category": "flowers",
		}, token)
		require.Equal(t, http.StatusOK, status, body)
	}

	matchCases := []struct {
		token    string
		itemName string
		price    string
	}{
		// exact match is case sensitive, so each spelling finds its own row
		{"dekorasi", "dekorasi", "4000000"},
		{"Dekorasi", "Dekorasi", "6000000"},
		// no exact spelling: substring, equal length, lowest id
		{"DEKORASI", "Dekorasi", "6000000"},
		// token contains an item name
		{"Dekorasi Mewah", "Dekorasi", "6000000"},
		// shortest by characters, not bytes
		{"bunga", "Bunga éé", "300000"},
	}
	for _, tc := range matchCases {
		status, body = call(t, server, http.MethodPost, "/api/custom-requests/quote", map[string]any{"services": tc.token}, "")
		require.Equal(t, http.StatusOK, status, body)
		lines, _ := body["items"].([]any)
		require.Len(t, lines, 1, tc.token)
		line, _ := lines[0].(map[string]any)
		assert.Equal(t, tc.token, line["name"])
		assert.Equal(t, tc.itemName, line["item_name"], tc.token)
		assertDecimal(t, tc.price, line["price"])
	}

	// --- 8. Only bcrypt hashes authenticate ---
	require.NoError(t, db.Exec("INSERT INTO admins (email, password, created_at, updated_at) VALUES (?, ?, NOW(), NOW())",
		"legacy@weddingbliss.com", "plain123").Error)
	status, _ = call(t, server, http.MethodPost, "/api/admin/login", map[string]any{"email": "legacy@weddingbliss.com", "password": "plain123"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// --- 9. Stats reflect what was created ---
	status, body = call(t, server, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, float64(1), body["orders"])
	assert.Equal(t, float64(1), body["customRequests"])
}

func setupMySQLContainer(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()

	container, err := tcmysql.Run(ctx,
		"mysql:8.0.36",
		tcmysql.WithDatabase("wedding_test"),
		tcmysql.WithUsername("wo"),
		tcmysql.WithPassword("wo"),
	)
	if err != nil {
		t.Fatalf("start mysql container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	if err != nil {
		t.Fatalf("get connection string: %v", err)
	}

	cleanup := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
	return dsn, cleanup
}

func call(t *testing.T, server *httptest.Server, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func idOf(t *testing.T, body map[string]any) uint {
	t.Helper()
	id, ok := body["id"].(float64)
	require.True(t, ok, "missing id in %v", body)
	return uint(id)
}

func assertDecimal(t *testing.T, want string, got any) {
	t.Helper()
	raw := fmt.Sprint(got)
	d, err := decimal.NewFromString(raw)
	require.NoError(t, err, raw)
	assert.True(t, decimal.RequireFromString(want).Equal(d), "want %s, got %s", want, raw)
}
