package catalog

import (
	"context"

	"github.com/talkincode/restopos/internal/domain"
)

// Provider is the data source behind the catalog. Implementations own
// persistence; the catalog never keeps records between calls.
type Provider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns ErrNotFound when id does not exist
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// CreateProduct assigns identity and timestamps
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)

	// UpdateProduct replaces the stored fields of id with p
	UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)

	DeleteProduct(ctx context.Context, id string) (bool, error)

	ToggleFavorite(ctx context.Context, id string) (*domain.Product, error)
	ToggleSuspended(ctx context.Context, id string) (*domain.Product, error)

	ListGroups(ctx context.Context) ([]domain.ProductGroup, error)
	ListSubgroups(ctx context.Context) ([]domain.ProductSubgroup, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)

	// CodeExists reports whether another product than excludeID uses code
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)

	ProductStats(ctx context.Context) (*domain.ProductStats, error)
}
