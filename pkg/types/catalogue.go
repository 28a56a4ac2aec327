package types

import "time"

// Catalogue item statuses.
const (
	CatalogueStatusActive          = "active"
	CatalogueStatusInactive        = "inactive"
	CatalogueStatusPendingApproval = "pending_approval"
	CatalogueStatusDiscontinued    = "discontinued"
)

// CatalogueItem is a purchasable item offered by a contracted supplier.
type CatalogueItem struct {
	ID           string    `json:"id"`
	ItemCode     string    `json:"item_code"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Status       string    `json:"status"`
	UnitPrice    float64   `json:"unit_price"`
	Currency     string    `json:"currency"`
	InStock      bool      `json:"in_stock"`
	Featured     bool      `json:"featured"`
	BbbeeLevel   int       `json:"bbbee_level"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *CatalogueItem) EntityID() string      { return c.ID }
func (c *CatalogueItem) SetEntityID(id string) { c.ID = id }
