package catalog

import (
	"strings"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/pkg/common"
)

// Filter returns the products matching every criterion of f, in input order.
// The input slice is never modified.
func Filter(products []domain.Product, f schema.ProductFilter) []domain.Product {
	search := strings.ToLower(f.Search)
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if matchProduct(&products[i], &f, search) {
			out = append(out, products[i])
		}
	}
	return out
}

func matchProduct(p *domain.Product, f *schema.ProductFilter, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Code), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}
	if constrained(f.Kind) && string(p.Kind) != f.Kind {
		return false
	}
	if f.Favorites != nil && p.Favorite != *f.Favorites {
		return false
	}
	if f.Suspended != nil && p.Suspended != *f.Suspended {
		return false
	}
	if f.Active != nil && p.Suspended == *f.Active {
		return false
	}
	if constrained(f.GroupID) && p.GroupID != f.GroupID {
		return false
	}
	if constrained(f.SubgroupID) && p.SubgroupID != f.SubgroupID {
		return false
	}
	return true
}

func constrained(v string) bool {
	return v != "" && v != schema.FilterAll
}

// Page returns the requested window of products along with the total count
// before paging.
func Page(products []domain.Product, page, limit int) ([]domain.Product, int) {
	return common.Paginate(products, page, limit), len(products)
}
