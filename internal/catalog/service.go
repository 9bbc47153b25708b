package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/domain"
)

// Service is the access layer between the admin API and the catalog provider.
// Every method makes exactly one provider call; there are no retries and no
// caching.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) loadFailed(op, msg string, err error) error {
	zap.L().Error(msg, zap.String("op", op), zap.Error(err))
	return &OperationError{Op: op, Message: msg, Err: err}
}

func (s *Service) mutationFailed(op string, err error) error {
	zap.L().Error("catalog mutation failed", zap.String("op", op), zap.Error(err))
	return err
}

// List returns every product
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, s.loadFailed("list_products", MsgLoadProducts, err)
	}
	return rows, nil
}

// Get returns one product by id
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.provider.GetProduct(ctx, id)
	if err != nil {
		return nil, s.loadFailed("get_product", MsgLoadProduct, err)
	}
	return p, nil
}

// Create stores a new product. Provider errors, including field level
// validation errors, are returned unmodified.
func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := s.provider.CreateProduct(ctx, p)
	if err != nil {
		return nil, s.mutationFailed("create_product", err)
	}
	return created, nil
}

// Update replaces the product id. Provider errors are returned unmodified.
func (s *Service) Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	updated, err := s.provider.UpdateProduct(ctx, id, p)
	if err != nil {
		return nil, s.mutationFailed("update_product", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.provider.DeleteProduct(ctx, id)
	if err != nil {
		return false, s.loadFailed("delete_product", MsgDeleteProduct, err)
	}
	return deleted, nil
}

func (s *Service) ToggleFavorite(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.provider.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, s.mutationFailed("toggle_favorite", err)
	}
	return p, nil
}

func (s *Service) ToggleSuspended(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.provider.ToggleSuspended(ctx, id)
	if err != nil {
		return nil, s.mutationFailed("toggle_suspended", err)
	}
	return p, nil
}

func (s *Service) ListGroups(ctx context.Context) ([]domain.ProductGroup, error) {
	rows, err := s.provider.ListGroups(ctx)
	if err != nil {
		return nil, s.loadFailed("list_groups", MsgLoadGroups, err)
	}
	return rows, nil
}

func (s *Service) ListSubgroups(ctx context.Context) ([]domain.ProductSubgroup, error) {
	rows, err := s.provider.ListSubgroups(ctx)
	if err != nil {
		return nil, s.loadFailed("list_subgroups", MsgLoadSubgroups, err)
	}
	return rows, nil
}

func (s *Service) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	rows, err := s.provider.ListUnits(ctx)
	if err != nil {
		return nil, s.loadFailed("list_units", MsgLoadUnits, err)
	}
	return rows, nil
}

func (s *Service) ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	rows, err := s.provider.ListProductionAreas(ctx)
	if err != nil {
		return nil, s.loadFailed("list_production_areas", MsgLoadProductionAreas, err)
	}
	return rows, nil
}

func (s *Service) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	rows, err := s.provider.ListWarehouses(ctx)
	if err != nil {
		return nil, s.loadFailed("list_warehouses", MsgLoadWarehouses, err)
	}
	return rows, nil
}

// IsCodeUnique reports whether no product other than excludeID uses code.
// A failed check counts as not unique.
func (s *Service) IsCodeUnique(ctx context.Context, code, excludeID string) bool {
	exists, err := s.provider.CodeExists(ctx, code, excludeID)
	if err != nil {
		zap.L().Warn("product code check failed", zap.String("code", code), zap.Error(err))
		return false
	}
	return !exists
}

func (s *Service) Stats(ctx context.Context) (*domain.ProductStats, error) {
	stats, err := s.provider.ProductStats(ctx)
	if err != nil {
		return nil, s.loadFailed("product_stats", MsgLoadStats, err)
	}
	return stats, nil
}
