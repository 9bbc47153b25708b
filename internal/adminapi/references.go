package adminapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/webserver"
)

// registerReferenceRoutes registers the read-only catalog lookups
func registerReferenceRoutes() {
	webserver.ApiGET("/catalog/groups", listGroups)
	webserver.ApiGET("/catalog/subgroups", listSubgroups)
	webserver.ApiGET("/catalog/units", listUnits)
	webserver.ApiGET("/catalog/production-areas", listProductionAreas)
	webserver.ApiGET("/catalog/warehouses", listWarehouses)
}

func listGroups(c echo.Context) error {
	rows, err := GetServices(c).Catalog().ListGroups(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}

// listSubgroups optionally narrows the result to ?group=<id>
func listSubgroups(c echo.Context) error {
	rows, err := GetServices(c).Catalog().ListSubgroups(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	group := strings.TrimSpace(c.QueryParam("group"))
	if group == "" {
		return ok(c, rows)
	}
	out := make([]domain.ProductSubgroup, 0, len(rows))
	for _, sg := range rows {
		if sg.GroupID == group {
			out = append(out, sg)
		}
	}
	return ok(c, out)
}

func listUnits(c echo.Context) error {
	rows, err := GetServices(c).Catalog().ListUnits(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}

func listProductionAreas(c echo.Context) error {
	rows, err := GetServices(c).Catalog().ListProductionAreas(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}

func listWarehouses(c echo.Context) error {
	rows, err := GetServices(c).Catalog().ListWarehouses(c.Request().Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, rows)
}
