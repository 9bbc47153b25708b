package adminapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/restopos/internal/domain"
)

func seedCustomers(env *testEnv) {
	now := time.Now()
	env.provider.customers = []domain.Customer{
		{ID: "c1", Name: "Juan Pérez", Email: "juan@example.com", Phone: "555-1234", LastVisit: now.AddDate(0, 0, -2), TotalSpend: 300, Rating: 4},
		{ID: "c2", Name: "Ana Ruiz", Email: "ana@example.com", Phone: "555-9876", LastVisit: now.AddDate(0, -3, 0), TotalSpend: 100, Rating: 5},
	}
}

func TestListCustomersSearchAndSort(t *testing.T) {
	env := newTestEnv(t)
	seedCustomers(env)

	rec := env.get("/customers")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "Ana Ruiz", items[0].(map[string]interface{})["name"])

	stats := data["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["total"])
	assert.EqualValues(t, 1, stats["active"])
	assert.EqualValues(t, 200, stats["average_spend"])

	rec = env.get("/customers?q=JUAN")
	data = decode(t, rec)["data"].(map[string]interface{})
	items = data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].(map[string]interface{})["id"])
	// stats still describe the whole list
	assert.EqualValues(t, 2, data["stats"].(map[string]interface{})["total"])

	rec = env.get("/customers?sort=total_spend&order=desc")
	items = decode(t, rec)["data"].(map[string]interface{})["items"].([]interface{})
	assert.Equal(t, "c1", items[0].(map[string]interface{})["id"])
}

func TestCreateCustomerValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.sendJSON(http.MethodPost, "/customers", `{"email":"not-an-email","rating":7}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	fields := map[string]string{}
	for _, d := range body["details"].([]interface{}) {
		fe := d.(map[string]interface{})
		fields[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "rating must be less than or equal to 5", fields["rating"])

	rec = env.sendJSON(http.MethodPost, "/customers", `{"name":"  Lucía Gómez ","email":"lucia@example.com","preferences":["vegetariana"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Lucía Gómez", data["name"])
	assert.Equal(t, []string{"create_customer"}, env.auditActions())
}

func TestUpdateAndDeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	seedCustomers(env)

	rec := env.sendJSON(http.MethodPut, "/customers/c2", `{"name":"Ana María Ruiz","rating":4.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Ana María Ruiz", decode(t, rec)["data"].(map[string]interface{})["name"])

	rec = env.sendJSON(http.MethodPut, "/customers/zz", `{"name":"Nadie"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.get("/customers/zz")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodDelete, "/customers/c1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(http.MethodDelete, "/customers/c1", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"update_customer", "delete_customer"}, env.auditActions())
}

func multipartCSV(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "clientes.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestImportCustomers(t *testing.T) {
	env := newTestEnv(t)

	body, ctype := multipartCSV(t, "name,email,phone,last_visit,total_visits,total_spend,rating,preferences\n"+
		"Juan Pérez,juan@example.com,555-1234,2024-05-01,12,350.5,4.5,tacos;sin cebolla\n"+
		"Ana Ruiz,ana@example.com,555-9876,,3,90,5,\n")
	rec := env.do(http.MethodPost, "/customers/import", body, ctype)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 2, decode(t, rec)["data"].(map[string]interface{})["imported"])
	require.Len(t, env.provider.customers, 2)
	assert.Equal(t, []string{"tacos", "sin cebolla"}, env.provider.customers[0].Preferences)

	body, ctype = multipartCSV(t, "name,email\n,nobody@example.com\n")
	rec = env.do(http.MethodPost, "/customers/import", body, ctype)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CSV", decode(t, rec)["code"])

	rec = env.do(http.MethodPost, "/customers/import", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportCustomersXLSX(t *testing.T) {
	env := newTestEnv(t)
	seedCustomers(env)

	rec := env.get("/customers/export.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "customers.xlsx")
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", cellName(0, 1))
	assert.Equal(t, "H12", cellName(7, 12))
}

func TestImportCustomersStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.provider.failWrites = true

	body, ctype := multipartCSV(t, "name,email\nJuan Pérez,juan@example.com\nAna Ruiz,ana@example.com\n")
	rec := env.do(http.MethodPost, "/customers/import", body, ctype)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	res := decode(t, rec)
	assert.Equal(t, "IMPORT_FAILED", res["code"])
	assert.Equal(t, "Customer import failed", res["message"])
	assert.EqualValues(t, 1, res["details"].(map[string]interface{})["imported"])
	assert.NotContains(t, rec.Body.String(), "pq:")
}
