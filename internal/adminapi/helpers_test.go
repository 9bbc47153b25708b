package adminapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/restopos/config"
	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/dashboard"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/webserver"
)

const testSecret = "adminapi-test"

// memProvider keeps catalog and customer records in memory
type memProvider struct {
	mu        sync.Mutex
	seq       int
	products  []domain.Product
	customers []domain.Customer
	groups    []domain.ProductGroup
	subgroups []domain.ProductSubgroup
	failList  bool

	failCustomers bool
	failWrites    bool
}

func (m *memProvider) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memProvider) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList {
		return nil, errors.New("connection refused")
	}
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *memProvider) findProduct(id string) int {
	for i := range m.products {
		if m.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memProvider) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findProduct(id)
	if i < 0 {
		return nil, catalog.ErrNotFound
	}
	p := m.products[i]
	return &p, nil
}

func (m *memProvider) codeTaken(code, excludeID string) bool {
	for _, p := range m.products {
		if p.Code == code && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (m *memProvider) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return nil, errors.New(`create product: pq: relation "cat_product" does not exist`)
	}
	if m.codeTaken(p.Code, "") {
		return nil, catalog.ErrDuplicateCode
	}
	row := *p
	row.ID = m.nextID("p")
	row.UpdatedAt = time.Now()
	m.products = append(m.products, row)
	return &row, nil
}

func (m *memProvider) UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findProduct(id)
	if i < 0 {
		return nil, catalog.ErrNotFound
	}
	if m.codeTaken(p.Code, id) {
		return nil, catalog.ErrDuplicateCode
	}
	row := *p
	row.ID = id
	row.UpdatedAt = time.Now()
	m.products[i] = row
	return &row, nil
}

func (m *memProvider) DeleteProduct(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findProduct(id)
	if i < 0 {
		return false, nil
	}
	m.products = append(m.products[:i], m.products[i+1:]...)
	return true, nil
}

func (m *memProvider) toggle(id string, flip func(p *domain.Product)) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findProduct(id)
	if i < 0 {
		return nil, catalog.ErrNotFound
	}
	flip(&m.products[i])
	p := m.products[i]
	return &p, nil
}

func (m *memProvider) ToggleFavorite(ctx context.Context, id string) (*domain.Product, error) {
	return m.toggle(id, func(p *domain.Product) { p.Favorite = !p.Favorite })
}

func (m *memProvider) ToggleSuspended(ctx context.Context, id string) (*domain.Product, error) {
	return m.toggle(id, func(p *domain.Product) { p.Suspended = !p.Suspended })
}

func (m *memProvider) ListGroups(ctx context.Context) ([]domain.ProductGroup, error) {
	return m.groups, nil
}

func (m *memProvider) ListSubgroups(ctx context.Context) ([]domain.ProductSubgroup, error) {
	return m.subgroups, nil
}

func (m *memProvider) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return []domain.Unit{{ID: "u1", Name: "Pieza", Abbreviation: "pz"}}, nil
}

func (m *memProvider) ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	return []domain.ProductionArea{{ID: "a1", Name: "Cocina"}}, nil
}

func (m *memProvider) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return []domain.Warehouse{{ID: "w1", Name: "Almacén general"}}, nil
}

func (m *memProvider) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codeTaken(code, excludeID), nil
}

func (m *memProvider) ProductStats(ctx context.Context) (*domain.ProductStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &domain.ProductStats{ByKind: map[domain.ProductKind]int64{}}
	for _, p := range m.products {
		s.Total++
		if p.Suspended {
			s.Suspended++
		} else {
			s.Active++
		}
		if p.Favorite {
			s.Favorites++
		}
		s.ByKind[p.Kind]++
	}
	return s, nil
}

func (m *memProvider) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCustomers {
		return nil, errors.New("connection refused")
	}
	out := make([]domain.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *memProvider) findCustomer(id string) int {
	for i := range m.customers {
		if m.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memProvider) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findCustomer(id)
	if i < 0 {
		return nil, customer.ErrNotFound
	}
	c := m.customers[i]
	return &c, nil
}

func (m *memProvider) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites && len(m.customers) > 0 {
		return nil, errors.New("insert crm_customer: pq: connection reset by peer")
	}
	row := *c
	row.ID = m.nextID("c")
	m.customers = append(m.customers, row)
	return &row, nil
}

func (m *memProvider) UpdateCustomer(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findCustomer(id)
	if i < 0 {
		return nil, customer.ErrNotFound
	}
	row := *c
	row.ID = id
	m.customers[i] = row
	return &row, nil
}

func (m *memProvider) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.findCustomer(id)
	if i < 0 {
		return false, nil
	}
	m.customers = append(m.customers[:i], m.customers[i+1:]...)
	return true, nil
}

type testServices struct {
	catalog   *catalog.Service
	customers *customer.Service
	bus       EventBus.Bus
}

func (s *testServices) Catalog() *catalog.Service { return s.catalog }
func (s *testServices) Customers() *customer.Service { return s.customers }
func (s *testServices) Bus() EventBus.Bus { return s.bus }
func (s *testServices) Location() *time.Location { return time.UTC }

type testEnv struct {
	t        *testing.T
	server   *webserver.AdminServer
	provider *memProvider
	token    string

	mu   sync.Mutex
	logs []domain.SysOprLog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	Init()

	provider := &memProvider{
		groups:    []domain.ProductGroup{{ID: "g1", Name: "Comida"}, {ID: "g2", Name: "Bebidas"}},
		subgroups: []domain.ProductSubgroup{{ID: "s1", GroupID: "g1", Name: "Tacos"}, {ID: "s3", GroupID: "g2", Name: "Cervezas"}},
	}
	env := &testEnv{t: t, provider: provider}

	bus := EventBus.New()
	require.NoError(t, bus.Subscribe(domain.TopicOprLog, func(entry domain.SysOprLog) {
		env.mu.Lock()
		env.logs = append(env.logs, entry)
		env.mu.Unlock()
	}))

	cfg := *config.DefaultAppConfig
	cfg.Web.Secret = testSecret
	env.server = webserver.NewAdminServer(&cfg, &testServices{
		catalog:   catalog.NewService(provider),
		customers: customer.NewService(provider),
		bus:       bus,
	})

	token, err := webserver.IssueToken(testSecret, dashboard.Operator{
		Username: "maria",
		FullName: "María López",
		Role:     "Manager",
	}, time.Hour)
	require.NoError(t, err)
	env.token = token
	return env
}

func (e *testEnv) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1"+path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(http.MethodGet, path, nil, "")
}

func (e *testEnv) sendJSON(method, path, body string) *httptest.ResponseRecorder {
	return e.do(method, path, strings.NewReader(body), echo.MIMEApplicationJSON)
}

func (e *testEnv) auditActions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.logs))
	for _, l := range e.logs {
		out = append(out, l.OptAction)
	}
	return out
}

// decode unmarshals a response body into a generic map
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
