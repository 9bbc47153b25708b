package domain

var Tables = []interface{}{
	// System
	&SysOprLog{},
	// Catalog
	&ProductGroup{},
	&ProductSubgroup{},
	&Unit{},
	&ProductionArea{},
	&Warehouse{},
	&Product{},
	// CRM
	&Customer{},
}
