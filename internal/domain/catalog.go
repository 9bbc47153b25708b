package domain

import "time"

// Catalog reference entities

// ProductGroup top level menu grouping (drinks, starters, ...)
type ProductGroup struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Sort      int       `json:"sort"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (ProductGroup) TableName() string {
	return "cat_group"
}

// ProductSubgroup belongs to a ProductGroup
type ProductSubgroup struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	GroupID   string    `gorm:"size:32;index" json:"group_id"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (ProductSubgroup) TableName() string {
	return "cat_subgroup"
}

// Unit of sale (piece, bottle, liter)
type Unit struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Name         string    `gorm:"size:50" json:"name"`
	Abbreviation string    `gorm:"size:10" json:"abbreviation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Unit) TableName() string {
	return "cat_unit"
}

// ProductionArea where an order ticket is routed (kitchen, bar)
type ProductionArea struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Printer   string    `gorm:"size:100" json:"printer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (ProductionArea) TableName() string {
	return "cat_production_area"
}

// Warehouse stock location
type Warehouse struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Warehouse) TableName() string {
	return "cat_warehouse"
}
