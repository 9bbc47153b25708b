package customer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/domain"
)

// ErrNotFound is returned by providers for unknown customer ids
var ErrNotFound = errors.New("customer not found")

const (
	MsgLoadCustomers  = "failed to load customers"
	MsgLoadCustomer   = "failed to load customer"
	MsgDeleteCustomer = "failed to delete customer"
)

// Provider is the customer data source
type Provider interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) (bool, error)
}

// LoadError hides the provider failure of a read behind a fixed message
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string { return e.Message }

func (e *LoadError) Unwrap() error { return e.Err }

// Service delegates to a Provider with the same error policy as the catalog
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func loadFailed(msg string, err error) error {
	zap.L().Error(msg, zap.Error(err))
	return &LoadError{Message: msg, Err: err}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := s.provider.ListCustomers(ctx)
	if err != nil {
		return nil, loadFailed(MsgLoadCustomers, err)
	}
	return rows, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := s.provider.GetCustomer(ctx, id)
	if err != nil {
		return nil, loadFailed(MsgLoadCustomer, err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	created, err := s.provider.CreateCustomer(ctx, c)
	if err != nil {
		zap.L().Error("create customer failed", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	updated, err := s.provider.UpdateCustomer(ctx, id, c)
	if err != nil {
		zap.L().Error("update customer failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.provider.DeleteCustomer(ctx, id)
	if err != nil {
		return false, loadFailed(MsgDeleteCustomer, err)
	}
	return deleted, nil
}

// Import creates every record in order and stops at the first failure,
// returning how many were stored.
func (s *Service) Import(ctx context.Context, customers []domain.Customer) (int, error) {
	for i := range customers {
		if _, err := s.Create(ctx, &customers[i]); err != nil {
			return i, err
		}
	}
	return len(customers), nil
}
