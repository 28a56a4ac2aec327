package types

import "time"

// Tender statuses.
const (
	TenderStatusDraft     = "draft"
	TenderStatusPublished = "published"
	TenderStatusClosed    = "closed"
	TenderStatusAwarded   = "awarded"
	TenderStatusCancelled = "cancelled"
)

// Tender is a published invitation to bid.
type Tender struct {
	ID             string    `json:"id"`
	Reference      string    `json:"reference"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	TenderType     string    `json:"tender_type"`
	Department     string    `json:"department"`
	Status         string    `json:"status"`
	EstimatedValue float64   `json:"estimated_value"`
	LocalContent   bool      `json:"local_content"`
	PublishedAt    time.Time `json:"published_at"`
	ClosingDate    time.Time `json:"closing_date"`
}

func (t *Tender) EntityID() string      { return t.ID }
func (t *Tender) SetEntityID(id string) { t.ID = id }
