package adminapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/internal/webserver"
)

const customerSheet = "Customers"

type customerPayload struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"omitempty,email,max=200"`
	Phone       string    `json:"phone" validate:"omitempty,max=50"`
	LastVisit   time.Time `json:"last_visit"`
	TotalVisits int       `json:"total_visits" validate:"gte=0"`
	TotalSpend  float64   `json:"total_spend" validate:"gte=0"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	Preferences []string  `json:"preferences"`
}

func (p customerPayload) customer() domain.Customer {
	return domain.Customer{
		Name:        strings.TrimSpace(p.Name),
		Email:       strings.TrimSpace(p.Email),
		Phone:       strings.TrimSpace(p.Phone),
		LastVisit:   p.LastVisit,
		TotalVisits: p.TotalVisits,
		TotalSpend:  p.TotalSpend,
		Rating:      p.Rating,
		Preferences: p.Preferences,
	}
}

type customerList struct {
	Items []domain.Customer `json:"items"`
	Stats customer.Stats    `json:"stats"`
}

// registerCustomerRoutes registers the customer endpoints
func registerCustomerRoutes() {
	webserver.ApiGET("/customers", listCustomers)
	webserver.ApiGET("/customers/export.xlsx", exportCustomers)
	webserver.ApiGET("/customers/:id", getCustomer)
	webserver.ApiPOST("/customers", createCustomer)
	webserver.ApiPOST("/customers/import", importCustomers)
	webserver.ApiPUT("/customers/:id", updateCustomer)
	webserver.ApiDELETE("/customers/:id", deleteCustomer)
}

// listCustomers returns the searched and sorted customers; stats always
// cover the whole list.
func listCustomers(c echo.Context) error {
	rows, err := GetServices(c).Customers().List(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}

	sortBy := strings.TrimSpace(c.QueryParam("sort"))
	if sortBy == "" {
		sortBy = "name"
	}
	dir := schema.Asc
	if strings.EqualFold(c.QueryParam("order"), string(schema.Desc)) {
		dir = schema.Desc
	}

	items := customer.Sort(customer.Search(rows, c.QueryParam("q")), sortBy, dir)
	return ok(c, customerList{Items: items, Stats: customer.ComputeStats(rows, time.Now())})
}

func getCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	cu, err := GetServices(c).Customers().Get(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, cu)
}

func createCustomer(c echo.Context) error {
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	cu := payload.customer()
	created, err := GetServices(c).Customers().Create(c.Request().Context(), &cu)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "create_customer", fmt.Sprintf("create customer %s (%s)", created.Name, created.ID))
	return ok(c, created)
}

func updateCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	var payload customerPayload
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	cu := payload.customer()
	updated, err := GetServices(c).Customers().Update(c.Request().Context(), id, &cu)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "update_customer", fmt.Sprintf("update customer %s (%s)", updated.Name, id))
	return ok(c, updated)
}

func deleteCustomer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID", nil)
	}
	deleted, err := GetServices(c).Customers().Delete(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	if !deleted {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	logOperation(c, "delete_customer", "delete customer "+id)
	return ok(c, map[string]interface{}{"id": id})
}

// importCustomers reads a CSV upload in the "file" form field
func importCustomers(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "MISSING_FILE", "A CSV file is required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FILE", "Unable to read upload", err.Error())
	}
	defer src.Close()

	svc := GetServices(c)
	rows, err := customer.ParseCSV(src, svc.Location())
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_CSV", "Invalid customer file", err.Error())
	}
	n, err := svc.Customers().Import(c.Request().Context(), rows)
	if err != nil {
		zap.L().Error("customer import failed", zap.Int("imported", n), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "IMPORT_FAILED", "Customer import failed", map[string]int{"imported": n})
	}
	logOperation(c, "import_customers", fmt.Sprintf("import %d customers from %s", n, file.Filename))
	return ok(c, map[string]int{"imported": n})
}

var customerColumns = []string{"Name", "Email", "Phone", "Last visit", "Visits", "Total spend", "Rating", "Preferences"}

// cellName converts a 0-based column and 1-based row into an A1 reference
func cellName(col, row int) string {
	return string(rune('A'+col)) + strconv.Itoa(row)
}

func exportCustomers(c echo.Context) error {
	svc := GetServices(c)
	rows, err := svc.Customers().List(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	rows = customer.Sort(rows, "name", schema.Asc)

	xlsx := excelize.NewFile()
	xlsx.SetSheetName("Sheet1", customerSheet)
	for i, title := range customerColumns {
		xlsx.SetCellValue(customerSheet, cellName(i, 1), title)
	}
	for r, cu := range rows {
		line := r + 2
		lastVisit := ""
		if !cu.LastVisit.IsZero() {
			lastVisit = cu.LastVisit.In(svc.Location()).Format("2006-01-02 15:04")
		}
		values := []interface{}{
			cu.Name,
			cu.Email,
			cu.Phone,
			lastVisit,
			cu.TotalVisits,
			cu.TotalSpend,
			cu.Rating,
			strings.Join(cu.Preferences, ";"),
		}
		for i, v := range values {
			xlsx.SetCellValue(customerSheet, cellName(i, line), v)
		}
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		zap.L().Error("customer export failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export customers", nil)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="customers.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
