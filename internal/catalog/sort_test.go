package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/schema"
)

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func TestSortByName(t *testing.T) {
	products := sampleProducts()
	asc := Sort(products, "name", schema.Asc)
	assert.Equal(t, []string{"4", "2", "3", "1"}, ids(asc))

	desc := Sort(products, "name", schema.Desc)
	assert.Equal(t, reversed(ids(asc)), ids(desc))

	// input untouched
	assert.Equal(t, sampleProducts(), products)
}

func TestSortLocaleAware(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Zanahoria"},
		{ID: "2", Name: "Ñoquis"},
		{ID: "3", Name: "Énchiladas"},
		{ID: "4", Name: "Nopales"},
	}
	assert.Equal(t, []string{"3", "4", "2", "1"}, ids(Sort(products, "name", schema.Asc)))
}

func TestSortBooleanFalseFirst(t *testing.T) {
	products := sampleProducts()
	// stable: non favorites keep input order, then favorites
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(Sort(products, "favorite", schema.Asc)))
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(Sort(products, "favorite", schema.Desc)))
}

func TestSortTimestamps(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{ID: "1", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "2", UpdatedAt: base},
		{ID: "3", UpdatedAt: base.Add(time.Hour)},
	}
	asc := ids(Sort(products, "updated_at", schema.Asc))
	assert.Equal(t, []string{"2", "3", "1"}, asc)
	assert.Equal(t, reversed(asc), ids(Sort(products, "updated_at", schema.Desc)))
}

func TestSortAttributes(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Attributes: map[string]interface{}{"spice": 3.0}},
		{ID: "2", Attributes: map[string]interface{}{"spice": 1.0}},
		{ID: "3", Attributes: map[string]interface{}{"spice": 2.0}},
	}
	assert.Equal(t, []string{"2", "3", "1"}, ids(Sort(products, "attr.spice", schema.Asc)))

	// mismatched types compare by text: "10" < "9"
	mixed := []domain.Product{
		{ID: "1", Attributes: map[string]interface{}{"size": "9"}},
		{ID: "2", Attributes: map[string]interface{}{"size": 10.0}},
	}
	assert.Equal(t, []string{"2", "1"}, ids(Sort(mixed, "attr.size", schema.Asc)))
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, ids(products), ids(Sort(products, "price", schema.Desc)))
	assert.False(t, IsSortField("price"))
	assert.False(t, IsSortField("attr."))
	assert.True(t, IsSortField("attr.spice"))
	assert.Contains(t, SortFields(), "name")
}
