package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/internal/webserver"
)

// registerProductRoutes registers the product catalog endpoints
func registerProductRoutes() {
	webserver.ApiGET("/catalog/products", listProducts)
	webserver.ApiGET("/catalog/products/code-check", checkProductCode)
	webserver.ApiGET("/catalog/products/stats", productStats)
	webserver.ApiGET("/catalog/products/export.csv", exportProducts)
	webserver.ApiGET("/catalog/products/:id", getProduct)
	webserver.ApiPOST("/catalog/products", createProduct)
	webserver.ApiPUT("/catalog/products/:id", updateProduct)
	webserver.ApiDELETE("/catalog/products/:id", deleteProduct)
	webserver.ApiPOST("/catalog/products/:id/favorite", toggleProductFavorite)
	webserver.ApiPOST("/catalog/products/:id/suspend", toggleProductSuspended)
}

// parseProductQuery reads the filter, sort and pagination query parameters
func parseProductQuery(c echo.Context) (schema.ProductFilter, schema.Pagination, []schema.FieldError) {
	q := c.QueryParams()
	filter, fres := schema.ParseFilter(q)
	pg, pres := schema.ParsePagination(q)
	errs := make([]schema.FieldError, 0, len(fres.Errors)+len(pres.Errors))
	errs = append(errs, fres.Errors...)
	errs = append(errs, pres.Errors...)
	return filter, pg, errs
}

func listProducts(c echo.Context) error {
	filter, pg, errs := parseProductQuery(c)
	if len(errs) > 0 {
		return fail(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters", errs)
	}

	rows, err := GetServices(c).Catalog().List(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	rows = catalog.Sort(catalog.Filter(rows, filter), pg.SortBy, pg.Direction)
	items, total := catalog.Page(rows, pg.Page, pg.Limit)
	return paged(c, items, int64(total), pg.Page, pg.Limit)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := GetServices(c).Catalog().Get(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var form schema.ProductForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if res := schema.ValidateProduct(form); !res.Valid() {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", res.Errors)
	}

	p := form.Product()
	created, err := GetServices(c).Catalog().Create(c.Request().Context(), &p)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "create_product", fmt.Sprintf("create product %s (%s)", created.Code, created.ID))
	return ok(c, created)
}

// decodeProductPatch overlays the keys present in patch onto form. Unknown
// keys and mistyped values are rejected.
func decodeProductPatch(patch map[string]interface{}, form *schema.ProductForm) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		ZeroFields:  true,
		Result:      form,
	})
	if err != nil {
		return err
	}
	return dec.Decode(patch)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var patch map[string]interface{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	svc := GetServices(c).Catalog()
	current, err := svc.Get(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}

	form := schema.FormFromProduct(*current)
	if err := decodeProductPatch(patch, &form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product fields", err.Error())
	}
	if res := schema.ValidateProduct(form); !res.Valid() {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", res.Errors)
	}

	p := form.Product()
	updated, err := svc.Update(c.Request().Context(), id, &p)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "update_product", fmt.Sprintf("update product %s (%s)", updated.Code, id))
	return ok(c, updated)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	deleted, err := GetServices(c).Catalog().Delete(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	if !deleted {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	logOperation(c, "delete_product", "delete product "+id)
	return ok(c, map[string]interface{}{"id": id})
}

func toggleProductFavorite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := GetServices(c).Catalog().ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "toggle_favorite", fmt.Sprintf("product %s favorite=%t", p.Code, p.Favorite))
	return ok(c, p)
}

func toggleProductSuspended(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := GetServices(c).Catalog().ToggleSuspended(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	logOperation(c, "toggle_suspended", fmt.Sprintf("product %s suspended=%t", p.Code, p.Suspended))
	return ok(c, p)
}

func checkProductCode(c echo.Context) error {
	code := strings.TrimSpace(c.QueryParam("code"))
	if code == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "code is required", nil)
	}
	exclude := strings.TrimSpace(c.QueryParam("exclude"))
	unique := GetServices(c).Catalog().IsCodeUnique(c.Request().Context(), code, exclude)
	return ok(c, map[string]interface{}{"code": code, "unique": unique})
}

func productStats(c echo.Context) error {
	stats, err := GetServices(c).Catalog().Stats(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, stats)
}

type productCSVRow struct {
	Code        string `csv:"code"`
	Kind        string `csv:"kind"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
	GroupID     string `csv:"group_id"`
	SubgroupID  string `csv:"subgroup_id"`
	Favorite    bool   `csv:"favorite"`
	Suspended   bool   `csv:"suspended"`
	Channels    string `csv:"channels"`
	UpdatedAt   string `csv:"updated_at"`
}

func productChannels(p *domain.Product) string {
	channels := make([]string, 0, 6)
	for _, ch := range []struct {
		name string
		on   bool
	}{
		{"dine_in", p.DineIn},
		{"delivery", p.Delivery},
		{"counter", p.Counter},
		{"online", p.Online},
		{"in_app", p.InApp},
		{"qr_menu", p.QRMenu},
	} {
		if ch.on {
			channels = append(channels, ch.name)
		}
	}
	return strings.Join(channels, ";")
}

// exportProducts writes the filtered and sorted catalog as CSV, unpaged
func exportProducts(c echo.Context) error {
	filter, pg, errs := parseProductQuery(c)
	if len(errs) > 0 {
		return fail(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters", errs)
	}
	rows, err := GetServices(c).Catalog().List(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	rows = catalog.Sort(catalog.Filter(rows, filter), pg.SortBy, pg.Direction)

	out := make([]productCSVRow, 0, len(rows))
	for i := range rows {
		p := &rows[i]
		out = append(out, productCSVRow{
			Code:        p.Code,
			Kind:        string(p.Kind),
			Name:        p.Name,
			Description: p.Description,
			GroupID:     p.GroupID,
			SubgroupID:  p.SubgroupID,
			Favorite:    p.Favorite,
			Suspended:   p.Suspended,
			Channels:    productChannels(p),
			UpdatedAt:   p.UpdatedAt.In(GetServices(c).Location()).Format(time.RFC3339),
		})
	}
	data, err := gocsv.MarshalBytes(&out)
	if err != nil {
		zap.L().Error("product export failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", nil)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
