// Package store is the gorm backed provider of catalog and customer data.
package store

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/customer"
)

// GormStore implements catalog.Provider and customer.Provider
type GormStore struct {
	db *gorm.DB
}

var (
	_ catalog.Provider  = (*GormStore)(nil)
	_ customer.Provider = (*GormStore)(nil)
)

// NewGormStore creates a store over an open gorm handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// notFound maps gorm's missing-row error onto the given sentinel
func notFound(err error, sentinel error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(sentinel, msg)
	}
	return pkgerrors.Wrap(err, msg)
}
