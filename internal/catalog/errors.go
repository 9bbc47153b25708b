package catalog

import "errors"

var (
	// ErrNotFound is returned by providers when a record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateCode is returned by providers when a product code is taken
	ErrDuplicateCode = errors.New("product code already exists")
)

// Fixed messages of read operations that failed in the provider
const (
	MsgLoadProducts        = "failed to load products"
	MsgLoadProduct         = "failed to load product"
	MsgDeleteProduct       = "failed to delete product"
	MsgLoadGroups          = "failed to load product groups"
	MsgLoadSubgroups       = "failed to load product subgroups"
	MsgLoadUnits           = "failed to load units"
	MsgLoadProductionAreas = "failed to load production areas"
	MsgLoadWarehouses      = "failed to load warehouses"
	MsgLoadStats           = "failed to load statistics"
)

// OperationError hides a provider failure behind a fixed message. The cause
// stays reachable through errors.Is/As but never appears in Error().
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
