package types

import "time"

// Contract statuses.
const (
	ContractStatusDraft      = "draft"
	ContractStatusActive     = "active"
	ContractStatusExpiring   = "expiring"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

// Contract is an agreement with a supplier.
type Contract struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	ContractType string    `json:"contract_type"`
	Status       string    `json:"status"`
	RiskLevel    string    `json:"risk_level"`
	Value        float64   `json:"value"`
	AutoRenew    bool      `json:"auto_renew"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

func (c *Contract) EntityID() string      { return c.ID }
func (c *Contract) SetEntityID(id string) { c.ID = id }
