package types

// Feature table names for Cupboard.GetTable. Each feature page owns exactly
// one table.
const (
	CatalogueTable      = "catalogue"
	DocumentsTable      = "documents"
	PurchaseOrdersTable = "purchase_orders"
	RequisitionsTable   = "requisitions"
	TendersTable        = "tenders"
	ContractsTable      = "contracts"
	SuppliersTable      = "suppliers"
	AuditTable          = "audit"
)

// StandardTableNames lists all feature table names for enumeration.
var StandardTableNames = []string{
	CatalogueTable,
	DocumentsTable,
	PurchaseOrdersTable,
	RequisitionsTable,
	TendersTable,
	ContractsTable,
	SuppliersTable,
	AuditTable,
}

// Entity is implemented by every record stored in a feature table.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
}

var entityFactories = map[string]func() Entity{
	CatalogueTable:      func() Entity { return &CatalogueItem{} },
	DocumentsTable:      func() Entity { return &Document{} },
	PurchaseOrdersTable: func() Entity { return &PurchaseOrder{} },
	RequisitionsTable:   func() Entity { return &Requisition{} },
	TendersTable:        func() Entity { return &Tender{} },
	ContractsTable:      func() Entity { return &Contract{} },
	SuppliersTable:      func() Entity { return &Supplier{} },
	AuditTable:          func() Entity { return &AuditEvent{} },
}

// NewEntity returns a zero entity pointer for the named table.
// Returns ErrTableNotFound for unknown names.
func NewEntity(table string) (Entity, error) {
	f, ok := entityFactories[table]
	if !ok {
		return nil, ErrTableNotFound
	}
	return f(), nil
}
