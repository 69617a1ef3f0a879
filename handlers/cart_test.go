package handlers_test

import (
	"net/http"
	"testing"

	"food-truck-api/config"
	"food-truck-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartSnapshotsPriceAndMergesLines(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	owner, _ := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)
	truck := seedTruck(t, owner.ID, "Taco Town")
	item := seedItem(t, truck.ID, "Taco", 5.00)
	_, customerToken := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)

	w := doJSON(t, router, "POST", "/api/cart", customerToken,
		map[string]interface{}{"itemId": item.ID, "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)

	// Catalog price change must not touch the snapshot
	config.DB.Model(&item).Update("price", 7.50)

	// Adding the same item again increments the existing line
	w = doJSON(t, router, "POST", "/api/cart", customerToken,
		map[string]interface{}{"itemId": item.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/cart", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	line := body["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(3), line["quantity"])
	assert.Equal(t, 5.00, line["price"])
	assert.Equal(t, 15.00, body["subtotal"])
}

func TestAddToCartRejectsSecondTruck(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	ownerA, _ := seedUser(t, "Owner A", "a@test.com", models.RoleTruckOwner)
	ownerB, _ := seedUser(t, "Owner B", "b@test.com", models.RoleTruckOwner)
	truckA := seedTruck(t, ownerA.ID, "Truck A")
	truckB := seedTruck(t, ownerB.ID, "Truck B")
	itemA := seedItem(t, truckA.ID, "Burger", 8.00)
	itemB := seedItem(t, truckB.ID, "Pizza", 9.00)
	_, token := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)

	w := doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": itemA.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": itemB.ID, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The cart still holds only truck A's line
	var count int64
	config.DB.Model(&models.CartLine{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// After clearing, the other truck becomes addable
	w = doJSON(t, router, "DELETE", "/api/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": itemB.ID, "quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	owner, _ := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)
	truck := seedTruck(t, owner.ID, "Truck")
	item := seedItem(t, truck.ID, "Fries", 3.00)
	_, token := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)

	w := doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": item.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var line models.CartLine
	require.NoError(t, config.DB.First(&line).Error)

	for _, qty := range []int{0, -3} {
		w = doJSON(t, router, "PUT", "/api/cart/"+itoa(line.ID), token,
			map[string]interface{}{"quantity": qty})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Line is unchanged
	var after models.CartLine
	require.NoError(t, config.DB.First(&after, line.ID).Error)
	assert.Equal(t, 2, after.Quantity)

	w = doJSON(t, router, "PUT", "/api/cart/"+itoa(line.ID), token,
		map[string]interface{}{"quantity": 5})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.First(&after, line.ID).Error)
	assert.Equal(t, 5, after.Quantity)
}

func TestRemoveRoundTripsToEmptyCart(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	owner, _ := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)
	truck := seedTruck(t, owner.ID, "Truck")
	item := seedItem(t, truck.ID, "Wrap", 6.00)
	_, token := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)

	w := doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": item.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var line models.CartLine
	require.NoError(t, config.DB.First(&line).Error)

	w = doJSON(t, router, "DELETE", "/api/cart/"+itoa(line.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/cart", token, nil)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])
}

func TestCartLineOwnershipEnforced(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	owner, _ := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)
	truck := seedTruck(t, owner.ID, "Truck")
	item := seedItem(t, truck.ID, "Soda", 2.00)
	_, tokenA := seedUser(t, "A", "a@test.com", models.RoleCustomer)
	_, tokenB := seedUser(t, "B", "b@test.com", models.RoleCustomer)

	w := doJSON(t, router, "POST", "/api/cart", tokenA,
		map[string]interface{}{"itemId": item.ID, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var line models.CartLine
	require.NoError(t, config.DB.First(&line).Error)

	w = doJSON(t, router, "DELETE", "/api/cart/"+itoa(line.ID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, "PUT", "/api/cart/"+itoa(line.ID), tokenB,
		map[string]interface{}{"quantity": 9})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var after models.CartLine
	require.NoError(t, config.DB.First(&after, line.ID).Error)
	assert.Equal(t, 1, after.Quantity)
}

func TestSoftDeletedItemCannotBeAdded(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	owner, ownerToken := seedUser(t, "Owner", "owner@test.com", models.RoleTruckOwner)
	truck := seedTruck(t, owner.ID, "Truck")
	item := seedItem(t, truck.ID, "Old Special", 4.00)
	_, token := seedUser(t, "Customer", "cust@test.com", models.RoleCustomer)

	w := doJSON(t, router, "DELETE", "/api/truck/menu/"+itoa(item.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Soft delete keeps the row but flips its status
	var after models.MenuItem
	require.NoError(t, config.DB.First(&after, item.ID).Error)
	assert.Equal(t, models.ItemUnavailable, after.Status)

	// Hidden from the public menu
	w = doJSON(t, router, "GET", "/api/trucks/"+itoa(truck.ID)+"/menu", "", nil)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])

	// And rejected by the cart
	w = doJSON(t, router, "POST", "/api/cart", token,
		map[string]interface{}{"itemId": item.ID, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
