package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"food-truck-api/config"
	"food-truck-api/middleware"
	"food-truck-api/models"
	"food-truck-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB removes any existing test DB and migrates a fresh one
func setupTestDB(t *testing.T) {
	t.Helper()
	_ = os.Remove("test.db")
	os.Setenv("DB_PATH", "test.db")
	config.InitDB()
	t.Cleanup(func() { _ = os.Remove("test.db") })
}

// setupRouter returns a Gin engine with the full route table for testing
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// seedUser creates a user row directly and returns it with a valid token
func seedUser(t *testing.T, name, email string, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func seedTruck(t *testing.T, ownerID uint, name string) models.Truck {
	t.Helper()
	truck := models.Truck{
		OwnerID:     ownerID,
		Name:        name,
		TruckStatus: models.TruckAvailable,
		OrderStatus: models.TruckAvailable,
	}
	require.NoError(t, config.DB.Create(&truck).Error)
	return truck
}

func seedItem(t *testing.T, truckID uint, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		TruckID:  truckID,
		Name:     name,
		Price:    price,
		Category: "general",
		Status:   models.ItemAvailable,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

// doJSON performs an authenticated JSON request against the router
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// decodeBody unmarshals a recorder body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
