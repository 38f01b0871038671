package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/database"
	"github.com/danuartha/resto-pos/router"
	"github.com/danuartha/resto-pos/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupIntegration(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:integration-%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	cat, err := catalog.Load(db)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return router.SetupRouter(db, cat)
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

// registerAndLogin mendaftarkan user lalu login, mengembalikan token JWT
func registerAndLogin(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()
	w := request(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "rahasia123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	w = request(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    email,
		"password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]interface{})
	return data["token"].(string)
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	return decode(t, w)["data"].(map[string]interface{})
}

// Alur lengkap shift restoran: admin menyiapkan menu, staff mendudukkan tamu,
// order berjalan sampai dibayar, lalu reservasi untuk malam harinya.
func TestRestaurantShiftFlow(t *testing.T) {
	r := setupIntegration(t)

	adminToken := registerAndLogin(t, r, "Admin", "admin@resto.local", "admin")
	staffToken := registerAndLogin(t, r, "Dewi", "dewi@resto.local", "staff")

	// --- Admin: kategori dan menu ---
	w := request(t, r, "POST", "/categories", adminToken, map[string]interface{}{"name": "Main Course"})
	assert.Equal(t, http.StatusCreated, w.Code)
	categoryID := uint(dataOf(t, w)["ID"].(float64))

	w = request(t, r, "POST", "/menus", adminToken, map[string]interface{}{
		"category_id": categoryID,
		"name":        "Nasi Goreng",
		"price":       35000,
		"stock":       50,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	menuID := uint(dataOf(t, w)["ID"].(float64))

	// Staff tidak boleh membuat menu
	w = request(t, r, "POST", "/menus", staffToken, map[string]interface{}{
		"category_id": categoryID,
		"name":        "Es Teh",
		"price":       5000,
		"stock":       100,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// --- Staff: meja ---
	w = request(t, r, "POST", "/tables", staffToken, map[string]interface{}{"label": "A1", "seats": 4})
	assert.Equal(t, http.StatusCreated, w.Code)
	tableID := uint(dataOf(t, w)["id"].(float64))

	// Label duplikat ditolak
	w = request(t, r, "POST", "/tables", staffToken, map[string]interface{}{"label": "A1", "seats": 2})
	assert.Equal(t, http.StatusConflict, w.Code)

	// --- Staff: dudukkan tamu walk-in ---
	var staffID uint
	w = request(t, r, "GET", "/profile", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	staffID = uint(dataOf(t, w)["id"].(float64))

	w = request(t, r, "POST", "/orders/start", staffToken, map[string]interface{}{
		"user_id":  staffID,
		"table_id": tableID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	order := dataOf(t, w)
	orderID := uint(order["id"].(float64))
	assert.Equal(t, "NEW", order["status"])

	// Meja sekarang OCCUPIED di listing publik
	w = request(t, r, "GET", "/tables", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tables := decode(t, w)["data"].([]interface{})
	assert.Len(t, tables, 1)
	assert.Equal(t, "OCCUPIED", tables[0].(map[string]interface{})["status"])

	// --- Pesan item ---
	w = request(t, r, "POST", fmt.Sprintf("/orders/%d/items", orderID), staffToken, map[string]interface{}{
		"menu_id":  menuID,
		"quantity": 2,
		"notes":    "pedas",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 70000.0, dataOf(t, w)["total"])

	// Order muncul di daftar open untuk meja ini
	w = request(t, r, "GET", fmt.Sprintf("/tables/%d/orders/open", tableID), staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	open := decode(t, w)["data"].([]interface{})
	assert.Len(t, open, 1)

	// --- Bayar ---
	w = request(t, r, "POST", fmt.Sprintf("/orders/%d/pay", orderID), staffToken, map[string]interface{}{
		"method":      "cash",
		"paid_amount": 100000,
		"tip":         5000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Meja kembali AVAILABLE, daftar open kosong
	w = request(t, r, "GET", fmt.Sprintf("/tables/%d", tableID), staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AVAILABLE", dataOf(t, w)["status"])

	w = request(t, r, "GET", "/orders/open", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])

	w = request(t, r, "GET", "/orders/paid", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	paid := decode(t, w)["data"].([]interface{})
	assert.Len(t, paid, 1)

	// --- Reservasi malam ---
	eventTime := time.Date(2030, 6, 1, 19, 0, 0, 0, time.UTC).Format(time.RFC3339)
	w = request(t, r, "POST", "/reservations", staffToken, map[string]interface{}{
		"table_id":   tableID,
		"guest_name": "Pak Raden",
		"party_size": 4,
		"event_time": eventTime,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Slot yang sama persis: konflik
	w = request(t, r, "POST", "/reservations", staffToken, map[string]interface{}{
		"table_id":   tableID,
		"guest_name": "Bu Tejo",
		"party_size": 2,
		"event_time": eventTime,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Tanpa token tidak bisa menyentuh route staff
	w = request(t, r, "GET", "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
