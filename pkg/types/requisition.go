package types

import "time"

// Requisition statuses.
const (
	RequisitionStatusDraft     = "draft"
	RequisitionStatusSubmitted = "submitted"
	RequisitionStatusApproved  = "approved"
	RequisitionStatusRejected  = "rejected"
)

// Requisition is an internal request to procure goods or services.
type Requisition struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Department     string    `json:"department"`
	Requester      string    `json:"requester"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	EstimatedValue float64   `json:"estimated_value"`
	Urgent         bool      `json:"urgent"`
	RequiredBy     time.Time `json:"required_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *Requisition) EntityID() string      { return r.ID }
func (r *Requisition) SetEntityID(id string) { r.ID = id }
