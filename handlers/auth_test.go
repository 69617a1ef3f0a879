package handlers_test

import (
	"net/http"
	"testing"

	"food-truck-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doJSON(t, router, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "testpass",
		"role":     models.RoleCustomer,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	// Duplicate email is refused
	w = doJSON(t, router, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "testpass",
		"role":     models.RoleCustomer,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "test@example.com",
		"password": "testpass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "test@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doJSON(t, router, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Driver",
		"email":    "driver@example.com",
		"password": "testpass",
		"role":     "driver",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleGuards(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	_, customerToken := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)
	_, ownerToken := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)

	// No token at all
	w := doJSON(t, router, "GET", "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = doJSON(t, router, "GET", "/api/cart", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An owner cannot use the cart; a customer cannot manage a truck
	w = doJSON(t, router, "GET", "/api/cart", ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, router, "POST", "/api/truck", customerToken,
		map[string]interface{}{"truckName": "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
