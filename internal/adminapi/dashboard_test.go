package adminapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(env)
	seedCustomers(env)

	rec := env.get("/dashboard")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Welcome, María!", data["greeting"])
	assert.Equal(t, "Manager", data["role"])
	assert.Equal(t, "Basic", data["license"])
	assert.EqualValues(t, 4, data["products"].(map[string]interface{})["total"])
	assert.EqualValues(t, 2, data["customers"].(map[string]interface{})["total"])
	assert.Len(t, data["activities"], 5)
	assert.Len(t, data["quick_actions"], 4)

	company := data["company"].(map[string]interface{})
	assert.Equal(t, "My Restaurant", company["company"])
	assert.Equal(t, "First access", company["last_access"])
}

func TestDashboardLoadFailure(t *testing.T) {
	env := newTestEnv(t)
	env.provider.failCustomers = true

	rec := env.get("/dashboard")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to load customers", decode(t, rec)["message"])
}

func TestSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/session")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "maria", data["username"])
	assert.Equal(t, "María López", data["full_name"])
}
