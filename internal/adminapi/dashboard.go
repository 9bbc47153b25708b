package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/dashboard"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/webserver"
)

func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard", getDashboard)
	webserver.ApiGET("/session", getSession)
}

// getDashboard loads catalog and customer statistics concurrently
func getDashboard(c echo.Context) error {
	op, _ := webserver.CurrentOperator(c)
	svc := GetServices(c)

	var (
		productStats  *domain.ProductStats
		customerStats customer.Stats
	)
	now := time.Now()
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		stats, err := svc.Catalog().Stats(ctx)
		productStats = stats
		return err
	})
	g.Go(func() error {
		rows, err := svc.Customers().List(ctx)
		if err != nil {
			return err
		}
		customerStats = customer.ComputeStats(rows, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return failErr(c, err)
	}

	return ok(c, dashboard.Build(op, now.In(svc.Location()), productStats, &customerStats))
}

func getSession(c echo.Context) error {
	op, found := webserver.CurrentOperator(c)
	if !found {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "No active session", nil)
	}
	return ok(c, op)
}
