package webserver

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
)

type apiRoute struct {
	method      string
	path        string
	handler     echo.HandlerFunc
	middlewares []echo.MiddlewareFunc
}

var (
	routesMu  sync.Mutex
	apiRoutes []apiRoute
)

func addRoute(method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	routesMu.Lock()
	defer routesMu.Unlock()
	apiRoutes = append(apiRoutes, apiRoute{method: method, path: path, handler: h, middlewares: m})
}

// ApiGET registers a GET route under the authenticated /api/v1 group
func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	addRoute(http.MethodGet, path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	addRoute(http.MethodPost, path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	addRoute(http.MethodPut, path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	addRoute(http.MethodDelete, path, h, m...)
}

func registeredRoutes() []apiRoute {
	routesMu.Lock()
	defer routesMu.Unlock()
	out := make([]apiRoute, len(apiRoutes))
	copy(out, apiRoutes)
	return out
}
