package store

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/pkg/common"
)

func (s *GormStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []domain.Customer
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query customers")
	}
	return rows, nil
}

func (s *GormStore) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err, customer.ErrNotFound, "query customer "+id)
	}
	return &c, nil
}

func (s *GormStore) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	now := time.Now()
	row := *c
	row.ID = common.UUID()
	row.CreatedAt = now
	row.UpdatedAt = now
	if row.Preferences == nil {
		row.Preferences = []string{}
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create customer")
	}
	return &row, nil
}

func (s *GormStore) UpdateCustomer(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	current, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	row := *c
	row.ID = current.ID
	row.CreatedAt = current.CreatedAt
	row.UpdatedAt = time.Now()
	if row.Preferences == nil {
		row.Preferences = []string{}
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "update customer "+id)
	}
	return &row, nil
}

func (s *GormStore) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Customer{})
	if res.Error != nil {
		return false, pkgerrors.Wrap(res.Error, "delete customer "+id)
	}
	return res.RowsAffected > 0, nil
}
