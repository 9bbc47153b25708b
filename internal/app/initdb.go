package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/pkg/common"
)

// Seed loads the default lookups, the demo menu and the demo customers.
// Existing records are left alone.
func (a *Application) Seed() {
	a.checkReferenceData()
	a.checkProducts()
	a.checkCustomers()
}

// checkReferenceData initializes the default catalog lookups
func (a *Application) checkReferenceData() {
	now := time.Now()
	groups := []domain.ProductGroup{
		{ID: "g-food", Name: "Comida", Sort: 1},
		{ID: "g-drinks", Name: "Bebidas", Sort: 2},
		{ID: "g-desserts", Name: "Postres", Sort: 3},
	}
	subgroups := []domain.ProductSubgroup{
		{ID: "sg-tacos", GroupID: "g-food", Name: "Tacos"},
		{ID: "sg-burgers", GroupID: "g-food", Name: "Hamburguesas"},
		{ID: "sg-beer", GroupID: "g-drinks", Name: "Cervezas"},
		{ID: "sg-soft", GroupID: "g-drinks", Name: "Refrescos"},
		{ID: "sg-cakes", GroupID: "g-desserts", Name: "Pasteles"},
	}
	units := []domain.Unit{
		{ID: "u-pz", Name: "Pieza", Abbreviation: "pz"},
		{ID: "u-kg", Name: "Kilogramo", Abbreviation: "kg"},
		{ID: "u-lt", Name: "Litro", Abbreviation: "lt"},
	}
	areas := []domain.ProductionArea{
		{ID: "a-kitchen", Name: "Cocina", Printer: "kitchen-01"},
		{ID: "a-bar", Name: "Barra", Printer: "bar-01"},
	}
	warehouses := []domain.Warehouse{
		{ID: "w-main", Name: "Almacén general"},
	}

	for _, g := range groups {
		g.CreatedAt, g.UpdatedAt = now, now
		a.seedRow(&domain.ProductGroup{}, g.ID, &g)
	}
	for _, sg := range subgroups {
		sg.CreatedAt, sg.UpdatedAt = now, now
		a.seedRow(&domain.ProductSubgroup{}, sg.ID, &sg)
	}
	for _, u := range units {
		u.CreatedAt, u.UpdatedAt = now, now
		a.seedRow(&domain.Unit{}, u.ID, &u)
	}
	for _, pa := range areas {
		pa.CreatedAt, pa.UpdatedAt = now, now
		a.seedRow(&domain.ProductionArea{}, pa.ID, &pa)
	}
	for _, w := range warehouses {
		w.CreatedAt, w.UpdatedAt = now, now
		a.seedRow(&domain.Warehouse{}, w.ID, &w)
	}
}

// seedRow creates row unless a record with id already exists in model's table
func (a *Application) seedRow(model interface{}, id string, row interface{}) {
	var count int64
	a.gormDB.Model(model).Where("id = ?", id).Count(&count)
	if count > 0 {
		return
	}
	if err := a.gormDB.Create(row).Error; err != nil {
		zap.L().Error("failed to create default record", zap.String("id", id), zap.Error(err))
		return
	}
	zap.L().Info("initialized default record", zap.String("id", id))
}

// checkProducts initializes the demo menu
func (a *Application) checkProducts() {
	defaultProducts := []domain.Product{
		{Code: "TAC01", Kind: domain.KindDish, Name: "Tacos al pastor", Description: "Orden de cinco tacos con piña",
			GroupID: "g-food", SubgroupID: "sg-tacos", UnitID: "u-pz", ProductionAreaID: "a-kitchen",
			Favorite: true, Invoiceable: true, DineIn: true, Delivery: true, Counter: true},
		{Code: "HAM01", Kind: domain.KindDish, Name: "Hamburguesa clásica", Description: "Carne de res, queso y papas",
			GroupID: "g-food", SubgroupID: "sg-burgers", UnitID: "u-pz", ProductionAreaID: "a-kitchen",
			Invoiceable: true, DineIn: true, Delivery: true, Online: true},
		{Code: "CER01", Kind: domain.KindBottle, Name: "Cerveza clara", Description: "Botella 355 ml",
			GroupID: "g-drinks", SubgroupID: "sg-beer", UnitID: "u-pz", ProductionAreaID: "a-bar", WarehouseID: "w-main",
			StockControl: true, Invoiceable: true, DineIn: true, Counter: true},
		{Code: "REF01", Kind: domain.KindProduct, Name: "Refresco de cola", Description: "Lata 355 ml",
			GroupID: "g-drinks", SubgroupID: "sg-soft", UnitID: "u-pz", WarehouseID: "w-main",
			StockControl: true, Invoiceable: true, DineIn: true, Delivery: true, Counter: true, InApp: true},
		{Code: "PAS01", Kind: domain.KindDish, Name: "Pastel de chocolate", Description: "Rebanada",
			GroupID: "g-desserts", SubgroupID: "sg-cakes", UnitID: "u-pz", ProductionAreaID: "a-kitchen",
			OpenPrice: true, DineIn: true, QRMenu: true},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("code = ?", p.Code).Count(&count)
		if count == 0 {
			p.ID = common.NewID()
			p.Attributes = map[string]interface{}{}
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("code", p.Code), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("code", p.Code), zap.String("name", p.Name))
			}
		}
	}
}

// checkCustomers initializes demo customers
func (a *Application) checkCustomers() {
	now := time.Now()
	defaultCustomers := []domain.Customer{
		{Name: "Juan Pérez", Email: "juan.perez@example.com", Phone: "+52 55 1234 5678",
			LastVisit: now.AddDate(0, 0, -3), TotalVisits: 15, TotalSpend: 4250.50, Rating: 4.8,
			Preferences: []string{"Mesa junto a la ventana", "Sin cebolla"}},
		{Name: "Ana Ruiz", Email: "ana.ruiz@example.com", Phone: "+52 55 8765 4321",
			LastVisit: now.AddDate(0, -2, 0), TotalVisits: 4, TotalSpend: 980, Rating: 4.2,
			Preferences: []string{"Vegetariana"}},
		{Name: "Carlos Méndez", Email: "carlos.mendez@example.com", Phone: "+52 33 5555 0101",
			LastVisit: now.AddDate(0, 0, -12), TotalVisits: 8, TotalSpend: 2100, Rating: 4.5,
			Preferences: []string{}},
	}

	for _, c := range defaultCustomers {
		var count int64
		a.gormDB.Model(&domain.Customer{}).Where("email = ?", c.Email).Count(&count)
		if count == 0 {
			c.ID = common.UUID()
			c.CreatedAt = now
			c.UpdatedAt = now
			if err := a.gormDB.Create(&c).Error; err != nil {
				zap.L().Error("failed to create default customer", zap.String("email", c.Email), zap.Error(err))
			} else {
				zap.L().Info("initialized default customer", zap.String("name", c.Name))
			}
		}
	}
}
