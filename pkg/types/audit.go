package types

import "time"

// AuditEvent records one user or system action.
type AuditEvent struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
	Action      string    `json:"action"`
	Module      string    `json:"module"`
	SubjectType string    `json:"entity_type"`
	SubjectID   string    `json:"entity_id"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	IPAddress   string    `json:"ip_address,omitempty"`
}

// EntityID returns the event's own ID. The audited record is SubjectID.
func (a *AuditEvent) EntityID() string      { return a.ID }
func (a *AuditEvent) SetEntityID(id string) { a.ID = id }
