package adminapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/internal/webserver"
)

// Services is what the handlers need from the application
type Services interface {
	Catalog() *catalog.Service
	Customers() *customer.Service
	Bus() EventBus.Bus
	Location() *time.Location
}

var registerOnce sync.Once

// Init registers every admin API route with the webserver
func Init() {
	registerOnce.Do(func() {
		registerProductRoutes()
		registerReferenceRoutes()
		registerCustomerRoutes()
		registerDashboardRoutes()
	})
}

// GetServices returns the application services bound to the request
func GetServices(c echo.Context) Services {
	return c.Get(webserver.ServicesKey).(Services)
}

type dataResult struct {
	Data interface{} `json:"data"`
}

type pagedResult struct {
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, dataResult{Data: data})
}

func paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, pagedResult{Data: data, Total: total, Page: page, PageSize: pageSize})
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, webserver.ErrorResponse{Code: code, Message: message, Details: details})
}

// failErr maps service errors onto HTTP statuses
func failErr(c echo.Context, err error) error {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verr.Errors)
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, customer.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, catalog.ErrDuplicateCode):
		return fail(c, http.StatusConflict, "DUPLICATE_CODE", "Product code already exists", nil)
	}
	var opErr *catalog.OperationError
	var loadErr *customer.LoadError
	if errors.As(err, &opErr) || errors.As(err, &loadErr) {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
	zap.L().Error("admin api request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err))
	return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

func parseIDParam(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	return id, nil
}

// handleValidationError turns validator tag failures into field errors
func handleValidationError(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
	}
	details := make([]schema.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, schema.FieldError{Field: fe.Field(), Message: tagMessage(fe)})
	}
	return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

// logOperation publishes an audit entry for the current operator
func logOperation(c echo.Context, action, desc string) {
	op, _ := webserver.CurrentOperator(c)
	GetServices(c).Bus().Publish(domain.TopicOprLog, domain.SysOprLog{
		OprName:   op.Username,
		OprIp:     c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	})
	zap.L().Info(desc, zap.String("namespace", "adminapi"), zap.String("operator", op.Username))
}
