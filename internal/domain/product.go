package domain

import "time"

// ProductKind classifies how a product is prepared and sold
type ProductKind string

const (
	KindDish    ProductKind = "Platillo" // requires preparation
	KindProduct ProductKind = "Producto" // sold as purchased
	KindBottle  ProductKind = "Botella"  // bottled beverages
)

// ProductKinds lists the accepted product kinds in display order
var ProductKinds = []ProductKind{KindDish, KindProduct, KindBottle}

// Valid reports whether k is one of ProductKinds
func (k ProductKind) Valid() bool {
	for _, v := range ProductKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Product is a catalog item sold through one or more sales channels
type Product struct {
	ID          string      `gorm:"primaryKey;size:32" json:"id"`
	Code        string      `gorm:"size:10;uniqueIndex" json:"code"`
	Kind        ProductKind `gorm:"size:16;index" json:"kind"`
	Name        string      `gorm:"size:100;index" json:"name"`
	Description string      `gorm:"size:500" json:"description"`

	Favorite      bool `json:"favorite"`
	TaxExempt     bool `json:"tax_exempt"`
	OpenPrice     bool `json:"open_price"`
	StockControl  bool `json:"stock_control"`
	MarginPricing bool `json:"margin_pricing"` // price derived from cost plus margin
	Invoiceable   bool `json:"invoiceable"`
	Suspended     bool `gorm:"index" json:"suspended"`

	// Sales channels
	DineIn   bool `json:"dine_in"`
	Delivery bool `json:"delivery"`
	Counter  bool `json:"counter"`
	Online   bool `json:"online"`
	InApp    bool `json:"in_app"`
	QRMenu   bool `json:"qr_menu"`

	GroupID            string `gorm:"size:32;index" json:"group_id"`
	SubgroupID         string `gorm:"size:32;index" json:"subgroup_id"`
	UnitID             string `gorm:"size:32" json:"unit_id"`
	ProductionAreaID   string `gorm:"size:32" json:"production_area_id"`
	WarehouseID        string `gorm:"size:32" json:"warehouse_id"`
	QRClassificationID string `gorm:"size:32" json:"qr_classification_id"`
	TaxCode            string `gorm:"size:32" json:"tax_code"`

	Attributes map[string]interface{} `gorm:"serializer:json;type:text" json:"attributes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SyncedAt  *time.Time `json:"synced_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "cat_product"
}

// HasChannel reports whether at least one sales channel is enabled
func (p *Product) HasChannel() bool {
	return p.DineIn || p.Delivery || p.Counter || p.Online || p.InApp || p.QRMenu
}

// ProductStats summarizes the catalog
type ProductStats struct {
	Total     int64                 `json:"total"`
	Active    int64                 `json:"active"`
	Suspended int64                 `json:"suspended"`
	Favorites int64                 `json:"favorites"`
	ByKind    map[ProductKind]int64 `json:"by_kind"`
}
