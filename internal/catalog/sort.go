package catalog

import (
	"sort"
	"strings"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
	"github.com/talkincode/restopos/pkg/common"
)

// AttributePrefix selects a dynamic attribute as sort key, e.g. "attr.spicy"
const AttributePrefix = "attr."

type productComparator func(c *common.Comparer, a, b *domain.Product) int

func byString(get func(p *domain.Product) string) productComparator {
	return func(c *common.Comparer, a, b *domain.Product) int {
		return c.Strings(get(a), get(b))
	}
}

func byBool(get func(p *domain.Product) bool) productComparator {
	return func(_ *common.Comparer, a, b *domain.Product) int {
		return common.Bools(get(a), get(b))
	}
}

var sortFields = map[string]productComparator{
	"id":                   byString(func(p *domain.Product) string { return p.ID }),
	"code":                 byString(func(p *domain.Product) string { return p.Code }),
	"kind":                 byString(func(p *domain.Product) string { return string(p.Kind) }),
	"name":                 byString(func(p *domain.Product) string { return p.Name }),
	"description":          byString(func(p *domain.Product) string { return p.Description }),
	"group_id":             byString(func(p *domain.Product) string { return p.GroupID }),
	"subgroup_id":          byString(func(p *domain.Product) string { return p.SubgroupID }),
	"unit_id":              byString(func(p *domain.Product) string { return p.UnitID }),
	"production_area_id":   byString(func(p *domain.Product) string { return p.ProductionAreaID }),
	"warehouse_id":         byString(func(p *domain.Product) string { return p.WarehouseID }),
	"qr_classification_id": byString(func(p *domain.Product) string { return p.QRClassificationID }),
	"tax_code":             byString(func(p *domain.Product) string { return p.TaxCode }),
	"favorite":             byBool(func(p *domain.Product) bool { return p.Favorite }),
	"tax_exempt":           byBool(func(p *domain.Product) bool { return p.TaxExempt }),
	"open_price":           byBool(func(p *domain.Product) bool { return p.OpenPrice }),
	"stock_control":        byBool(func(p *domain.Product) bool { return p.StockControl }),
	"margin_pricing":       byBool(func(p *domain.Product) bool { return p.MarginPricing }),
	"invoiceable":          byBool(func(p *domain.Product) bool { return p.Invoiceable }),
	"suspended":            byBool(func(p *domain.Product) bool { return p.Suspended }),
	"dine_in":              byBool(func(p *domain.Product) bool { return p.DineIn }),
	"delivery":             byBool(func(p *domain.Product) bool { return p.Delivery }),
	"counter":              byBool(func(p *domain.Product) bool { return p.Counter }),
	"online":               byBool(func(p *domain.Product) bool { return p.Online }),
	"in_app":               byBool(func(p *domain.Product) bool { return p.InApp }),
	"qr_menu":              byBool(func(p *domain.Product) bool { return p.QRMenu }),
	"created_at": func(c *common.Comparer, a, b *domain.Product) int {
		return c.Times(a.CreatedAt, b.CreatedAt)
	},
	"updated_at": func(c *common.Comparer, a, b *domain.Product) int {
		return c.Times(a.UpdatedAt, b.UpdatedAt)
	},
	"synced_at": func(c *common.Comparer, a, b *domain.Product) int {
		if a.SyncedAt == nil || b.SyncedAt == nil {
			return c.Strings(common.Text(a.SyncedAt), common.Text(b.SyncedAt))
		}
		return c.Times(*a.SyncedAt, *b.SyncedAt)
	},
}

// SortFields lists the accepted fixed sort keys
func SortFields() []string {
	keys := make([]string, 0, len(sortFields))
	for k := range sortFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsSortField reports whether field names a fixed key or an attribute key
func IsSortField(field string) bool {
	if _, ok := sortFields[field]; ok {
		return true
	}
	return strings.HasPrefix(field, AttributePrefix) && len(field) > len(AttributePrefix)
}

// Sort returns a stably sorted copy of products. Unknown fields leave the
// order unchanged; desc reverses the comparison.
func Sort(products []domain.Product, field string, dir schema.SortDirection) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	cmp, ok := sortFields[field]
	if !ok {
		if !IsSortField(field) {
			return out
		}
		key := strings.TrimPrefix(field, AttributePrefix)
		cmp = func(c *common.Comparer, a, b *domain.Product) int {
			return c.Values(a.Attributes[key], b.Attributes[key])
		}
	}

	c := common.NewComparer()
	sort.SliceStable(out, func(i, j int) bool {
		r := cmp(c, &out[i], &out[j])
		if dir == schema.Desc {
			r = -r
		}
		return r < 0
	})
	return out
}
