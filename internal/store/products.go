package store

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/pkg/common"
)

func (s *GormStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query products")
	}
	return rows, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, catalog.ErrNotFound, "query product "+id)
	}
	return &p, nil
}

// checkProduct applies the product rules and the code uniqueness constraint
func (s *GormStore) checkProduct(ctx context.Context, p *domain.Product, excludeID string) error {
	if err := schema.ValidateProduct(schema.FormFromProduct(*p)).Err(); err != nil {
		return err
	}
	exists, err := s.CodeExists(ctx, p.Code, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return pkgerrors.WithStack(catalog.ErrDuplicateCode)
	}
	return nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := s.checkProduct(ctx, p, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	row := *p
	row.ID = common.NewID()
	row.CreatedAt = now
	row.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create product")
	}
	return &row, nil
}

func (s *GormStore) UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	current, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(ctx, p, id); err != nil {
		return nil, err
	}
	row := *p
	row.ID = current.ID
	row.CreatedAt = current.CreatedAt
	row.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "update product "+id)
	}
	return &row, nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return false, pkgerrors.Wrap(res.Error, "delete product "+id)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) toggle(ctx context.Context, id, column string, get func(p *domain.Product) *bool) (*domain.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	flag := get(p)
	*flag = !*flag
	p.UpdatedAt = time.Now()
	err = s.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		column:       *flag,
		"updated_at": p.UpdatedAt,
	}).Error
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "toggle %s of product %s", column, id)
	}
	return p, nil
}

func (s *GormStore) ToggleFavorite(ctx context.Context, id string) (*domain.Product, error) {
	return s.toggle(ctx, id, "favorite", func(p *domain.Product) *bool { return &p.Favorite })
}

func (s *GormStore) ToggleSuspended(ctx context.Context, id string) (*domain.Product, error) {
	return s.toggle(ctx, id, "suspended", func(p *domain.Product) *bool { return &p.Suspended })
}

func (s *GormStore) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&domain.Product{}).Where("code = ?", code)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, pkgerrors.Wrap(err, "check product code")
	}
	return count > 0, nil
}

func (s *GormStore) ProductStats(ctx context.Context) (*domain.ProductStats, error) {
	var totals struct {
		Total     int64
		Suspended int64
		Favorites int64
	}
	err := s.db.WithContext(ctx).Model(&domain.Product{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN suspended THEN 1 ELSE 0 END),0) AS suspended, " +
			"COALESCE(SUM(CASE WHEN favorite THEN 1 ELSE 0 END),0) AS favorites").
		Scan(&totals).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query product totals")
	}

	var kinds []struct {
		Kind  domain.ProductKind
		Total int64
	}
	err = s.db.WithContext(ctx).Model(&domain.Product{}).
		Select("kind, COUNT(*) AS total").
		Group("kind").
		Scan(&kinds).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "query product kinds")
	}

	stats := &domain.ProductStats{
		Total:     totals.Total,
		Active:    totals.Total - totals.Suspended,
		Suspended: totals.Suspended,
		Favorites: totals.Favorites,
		ByKind:    make(map[domain.ProductKind]int64, len(domain.ProductKinds)),
	}
	for _, k := range domain.ProductKinds {
		stats.ByKind[k] = 0
	}
	for _, k := range kinds {
		stats.ByKind[k.Kind] = k.Total
	}
	return stats, nil
}

// listOrdered loads every row of a reference table ordered by name
func listOrdered[T any](ctx context.Context, db *gorm.DB, what string) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query "+what)
	}
	return rows, nil
}

func (s *GormStore) ListGroups(ctx context.Context) ([]domain.ProductGroup, error) {
	var rows []domain.ProductGroup
	if err := s.db.WithContext(ctx).Order("sort ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "query product groups")
	}
	return rows, nil
}

func (s *GormStore) ListSubgroups(ctx context.Context) ([]domain.ProductSubgroup, error) {
	return listOrdered[domain.ProductSubgroup](ctx, s.db, "product subgroups")
}

func (s *GormStore) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return listOrdered[domain.Unit](ctx, s.db, "units")
}

func (s *GormStore) ListProductionAreas(ctx context.Context) ([]domain.ProductionArea, error) {
	return listOrdered[domain.ProductionArea](ctx, s.db, "production areas")
}

func (s *GormStore) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return listOrdered[domain.Warehouse](ctx, s.db, "warehouses")
}
