package types

import "time"

// Purchase order statuses.
const (
	POStatusDraft           = "draft"
	POStatusPendingApproval = "pending_approval"
	POStatusApproved        = "approved"
	POStatusSent            = "sent"
	POStatusReceived        = "received"
	POStatusClosed          = "closed"
	POStatusCancelled       = "cancelled"
)

// PurchaseOrder is an order issued to a supplier.
type PurchaseOrder struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Department   string    `json:"department"`
	ContractID   string    `json:"contract_id,omitempty"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	Currency     string    `json:"currency"`
	OrderDate    time.Time `json:"order_date"`
	DeliveryDate time.Time `json:"delivery_date"`
}

func (p *PurchaseOrder) EntityID() string      { return p.ID }
func (p *PurchaseOrder) SetEntityID(id string) { p.ID = id }
