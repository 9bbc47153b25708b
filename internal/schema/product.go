package schema

import (
	"regexp"
	"unicode/utf8"

	"github.com/talkincode/restopos/internal/domain"
)

const (
	MaxCodeLength        = 10
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ProductForm is the create/update payload of a product. Flags are pointers so
// a missing flag can be told apart from false.
type ProductForm struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Favorite      *bool `json:"favorite"`
	TaxExempt     *bool `json:"tax_exempt"`
	OpenPrice     *bool `json:"open_price"`
	StockControl  *bool `json:"stock_control"`
	MarginPricing *bool `json:"margin_pricing"`
	Invoiceable   *bool `json:"invoiceable"`
	Suspended     *bool `json:"suspended"`

	DineIn   *bool `json:"dine_in"`
	Delivery *bool `json:"delivery"`
	Counter  *bool `json:"counter"`
	Online   *bool `json:"online"`
	InApp    *bool `json:"in_app"`
	QRMenu   *bool `json:"qr_menu"`

	GroupID            string `json:"group_id"`
	SubgroupID         string `json:"subgroup_id"`
	UnitID             string `json:"unit_id"`
	ProductionAreaID   string `json:"production_area_id"`
	WarehouseID        string `json:"warehouse_id"`
	QRClassificationID string `json:"qr_classification_id"`
	TaxCode            string `json:"tax_code"`

	Attributes map[string]interface{} `json:"attributes"`
}

type flagField struct {
	name string
	get  func(f *ProductForm) *bool
}

var flagFields = []flagField{
	{"favorite", func(f *ProductForm) *bool { return f.Favorite }},
	{"tax_exempt", func(f *ProductForm) *bool { return f.TaxExempt }},
	{"open_price", func(f *ProductForm) *bool { return f.OpenPrice }},
	{"stock_control", func(f *ProductForm) *bool { return f.StockControl }},
	{"margin_pricing", func(f *ProductForm) *bool { return f.MarginPricing }},
	{"invoiceable", func(f *ProductForm) *bool { return f.Invoiceable }},
	{"suspended", func(f *ProductForm) *bool { return f.Suspended }},
}

// channelFields are in display order; the first one receives the channel error.
var channelFields = []flagField{
	{"dine_in", func(f *ProductForm) *bool { return f.DineIn }},
	{"delivery", func(f *ProductForm) *bool { return f.Delivery }},
	{"counter", func(f *ProductForm) *bool { return f.Counter }},
	{"online", func(f *ProductForm) *bool { return f.Online }},
	{"in_app", func(f *ProductForm) *bool { return f.InApp }},
	{"qr_menu", func(f *ProductForm) *bool { return f.QRMenu }},
}

// ChannelField is the field that carries the "no sales channel" error
const ChannelField = "dine_in"

// ValidateProduct evaluates every product rule and returns all failures.
// Each field reports at most one message.
func ValidateProduct(f ProductForm) Result {
	var r Result

	switch {
	case f.Code == "":
		r.add("code", "product code is required")
	case utf8.RuneCountInString(f.Code) > MaxCodeLength:
		r.add("code", "product code cannot exceed 10 characters")
	case !codePattern.MatchString(f.Code):
		r.add("code", "only uppercase letters and digits are allowed")
	}

	switch {
	case f.Kind == "":
		r.add("kind", "a product kind must be selected")
	case !domain.ProductKind(f.Kind).Valid():
		r.add("kind", "product kind must be one of Platillo, Producto, Botella")
	}

	switch {
	case f.Name == "":
		r.add("name", "product name is required")
	case utf8.RuneCountInString(f.Name) > MaxNameLength:
		r.add("name", "product name cannot exceed 100 characters")
	}

	if utf8.RuneCountInString(f.Description) > MaxDescriptionLength {
		r.add("description", "description cannot exceed 500 characters")
	}

	for _, ff := range flagFields {
		if ff.get(&f) == nil {
			r.add(ff.name, ff.name+" is required")
		}
	}

	anyChannel := false
	for _, cf := range channelFields {
		v := cf.get(&f)
		if v == nil {
			r.add(cf.name, cf.name+" is required")
			continue
		}
		anyChannel = anyChannel || *v
	}
	if !anyChannel && !r.Has(ChannelField) {
		r.add(ChannelField, "at least one sales channel must be selected")
	}

	return r
}

// FormFromProduct fills a form with every field of p, flags included
func FormFromProduct(p domain.Product) ProductForm {
	return ProductForm{
		Code:               p.Code,
		Kind:               string(p.Kind),
		Name:               p.Name,
		Description:        p.Description,
		Favorite:           boolPtr(p.Favorite),
		TaxExempt:          boolPtr(p.TaxExempt),
		OpenPrice:          boolPtr(p.OpenPrice),
		StockControl:       boolPtr(p.StockControl),
		MarginPricing:      boolPtr(p.MarginPricing),
		Invoiceable:        boolPtr(p.Invoiceable),
		Suspended:          boolPtr(p.Suspended),
		DineIn:             boolPtr(p.DineIn),
		Delivery:           boolPtr(p.Delivery),
		Counter:            boolPtr(p.Counter),
		Online:             boolPtr(p.Online),
		InApp:              boolPtr(p.InApp),
		QRMenu:             boolPtr(p.QRMenu),
		GroupID:            p.GroupID,
		SubgroupID:         p.SubgroupID,
		UnitID:             p.UnitID,
		ProductionAreaID:   p.ProductionAreaID,
		WarehouseID:        p.WarehouseID,
		QRClassificationID: p.QRClassificationID,
		TaxCode:            p.TaxCode,
		Attributes:         p.Attributes,
	}
}

// Product converts a validated form into a product record. Missing flags
// become false; identity and timestamps are left to the provider.
func (f ProductForm) Product() domain.Product {
	return domain.Product{
		Code:               f.Code,
		Kind:               domain.ProductKind(f.Kind),
		Name:               f.Name,
		Description:        f.Description,
		Favorite:           boolVal(f.Favorite),
		TaxExempt:          boolVal(f.TaxExempt),
		OpenPrice:          boolVal(f.OpenPrice),
		StockControl:       boolVal(f.StockControl),
		MarginPricing:      boolVal(f.MarginPricing),
		Invoiceable:        boolVal(f.Invoiceable),
		Suspended:          boolVal(f.Suspended),
		DineIn:             boolVal(f.DineIn),
		Delivery:           boolVal(f.Delivery),
		Counter:            boolVal(f.Counter),
		Online:             boolVal(f.Online),
		InApp:              boolVal(f.InApp),
		QRMenu:             boolVal(f.QRMenu),
		GroupID:            f.GroupID,
		SubgroupID:         f.SubgroupID,
		UnitID:             f.UnitID,
		ProductionAreaID:   f.ProductionAreaID,
		WarehouseID:        f.WarehouseID,
		QRClassificationID: f.QRClassificationID,
		TaxCode:            f.TaxCode,
		Attributes:         f.Attributes,
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func boolVal(v *bool) bool {
	return v != nil && *v
}
