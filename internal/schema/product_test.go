package schema

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/restopos/internal/domain"
)

func validForm() ProductForm {
	return FormFromProduct(domain.Product{
		Code:   "ABC123",
		Kind:   domain.KindDish,
		Name:   "Tacos al pastor",
		DineIn: true,
	})
}

func TestValidateProductValid(t *testing.T) {
	r := ValidateProduct(validForm())
	assert.True(t, r.Valid(), r.Errors)
	assert.NoError(t, r.Err())
}

func TestValidateProductCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr string
	}{
		{"ABC123", ""},
		{"X1", ""},
		{"abc123", "only uppercase letters and digits are allowed"},
		{"TOOLONGCODE11", "product code cannot exceed 10 characters"},
		{"", "product code is required"},
		{"AB-12", "only uppercase letters and digits are allowed"},
		{"ÑANDU", "only uppercase letters and digits are allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f := validForm()
			f.Code = tt.code
			r := ValidateProduct(f)
			if tt.wantErr == "" {
				assert.False(t, r.Has("code"))
				return
			}
			assert.Equal(t, tt.wantErr, r.Fields()["code"])
		})
	}
}

func TestValidateProductKindNameDescription(t *testing.T) {
	f := validForm()
	f.Kind = "Bebida"
	f.Name = strings.Repeat("a", 101)
	f.Description = strings.Repeat("é", 501)
	r := ValidateProduct(f)
	fields := r.Fields()
	assert.Len(t, r.Errors, 3)
	assert.Contains(t, fields, "kind")
	assert.Equal(t, "product name cannot exceed 100 characters", fields["name"])
	assert.Equal(t, "description cannot exceed 500 characters", fields["description"])

	f = validForm()
	f.Kind = ""
	f.Name = ""
	f.Description = strings.Repeat("é", 500)
	fields = ValidateProduct(f).Fields()
	assert.Equal(t, "a product kind must be selected", fields["kind"])
	assert.Equal(t, "product name is required", fields["name"])
	assert.NotContains(t, fields, "description")
}

func TestValidateProductMissingFlags(t *testing.T) {
	f := validForm()
	f.TaxExempt = nil
	f.Suspended = nil
	r := ValidateProduct(f)
	assert.Equal(t, map[string]string{
		"tax_exempt": "tax_exempt is required",
		"suspended":  "suspended is required",
	}, r.Fields())
}

func TestValidateProductNoChannel(t *testing.T) {
	f := validForm()
	f.Code = "X1"
	f.Kind = "Platillo"
	f.DineIn = boolPtr(false)

	r := ValidateProduct(f)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, ChannelField, r.Errors[0].Field)
	assert.Equal(t, "at least one sales channel must be selected", r.Errors[0].Message)

	var verr *ValidationError
	require.ErrorAs(t, r.Err(), &verr)
	assert.Equal(t, r.Errors, verr.Errors)
	assert.Contains(t, verr.Error(), "dine_in")
}

func TestValidateProductNoChannelRegardlessOfOtherFields(t *testing.T) {
	f := ProductForm{}
	f.DineIn, f.Delivery, f.Counter = boolPtr(false), boolPtr(false), boolPtr(false)
	f.Online, f.InApp, f.QRMenu = boolPtr(false), boolPtr(false), boolPtr(false)

	r := ValidateProduct(f)
	assert.False(t, r.Valid())
	assert.Equal(t, "at least one sales channel must be selected", r.Fields()[ChannelField])
}

func TestValidateProductAnyChannelIsEnough(t *testing.T) {
	f := validForm()
	f.DineIn = boolPtr(false)
	f.QRMenu = boolPtr(true)
	assert.True(t, ValidateProduct(f).Valid())
}

func TestFormProductRoundTrip(t *testing.T) {
	f := validForm()
	f.Attributes = map[string]interface{}{"spicy": true}
	p := f.Product()
	assert.Equal(t, "ABC123", p.Code)
	assert.Equal(t, domain.KindDish, p.Kind)
	assert.True(t, p.DineIn)
	assert.True(t, p.HasChannel())
	assert.Equal(t, true, p.Attributes["spicy"])

	// missing flags convert to false
	assert.False(t, ProductForm{}.Product().Favorite)
}

func TestParseFilter(t *testing.T) {
	f, r := ParseFilter(url.Values{
		"search":    {"taco"},
		"kind":      {"Platillo"},
		"group":     {" all "},
		"favorites": {"true"},
		"suspended": {"0"},
	})
	require.True(t, r.Valid())
	assert.Equal(t, "taco", f.Search)
	assert.Equal(t, "Platillo", f.Kind)
	assert.Equal(t, FilterAll, f.GroupID)
	require.NotNil(t, f.Favorites)
	assert.True(t, *f.Favorites)
	require.NotNil(t, f.Suspended)
	assert.False(t, *f.Suspended)
	assert.Nil(t, f.Active)

	_, r = ParseFilter(url.Values{"active": {"maybe"}})
	assert.Equal(t, "active must be a boolean", r.Fields()["active"])
}

func TestParsePagination(t *testing.T) {
	p, r := ParsePagination(url.Values{})
	require.True(t, r.Valid())
	assert.Equal(t, DefaultPagination(), p)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, Asc, p.Direction)

	p, r = ParsePagination(url.Values{"page": {"3"}, "limit": {"100"}, "sort_by": {"code"}, "direction": {"DESC"}})
	require.True(t, r.Valid())
	assert.Equal(t, Pagination{Page: 3, Limit: 100, SortBy: "code", Direction: Desc}, p)

	_, r = ParsePagination(url.Values{"page": {"0"}, "limit": {"101"}, "direction": {"up"}})
	assert.Len(t, r.Errors, 3)
	assert.True(t, r.Has("page"))
	assert.True(t, r.Has("limit"))
	assert.True(t, r.Has("direction"))

	_, r = ParsePagination(url.Values{"limit": {"0"}, "page": {"x"}})
	assert.Equal(t, "limit must be between 1 and 100", r.Fields()["limit"])
	assert.Equal(t, "page must be a number", r.Fields()["page"])
}

func TestParsePaginationDecimal(t *testing.T) {
	p, r := ParsePagination(url.Values{"page": {"010"}, "limit": {"08"}})
	require.True(t, r.Valid(), r.Fields())
	assert.Equal(t, 10, p.Page)
	assert.Equal(t, 8, p.Limit)

	for _, v := range []string{"0x10", "+3", "-", "1e2", "0b1"} {
		_, r = ParsePagination(url.Values{"page": {v}})
		assert.Equal(t, "page must be a number", r.Fields()["page"], v)
	}

	for _, v := range []string{"000", "-010"} {
		_, r = ParsePagination(url.Values{"page": {v}})
		assert.Equal(t, "page must be greater than or equal to 1", r.Fields()["page"], v)
	}
}
