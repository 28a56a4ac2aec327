package features

import (
	"strconv"
	"time"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

type (
	supplier   = types.Supplier
	auditEvent = types.AuditEvent
)

// Suppliers defines the supplier registry.
func Suppliers() store.Definition[supplier] {
	return store.Definition[supplier]{
		Name: types.SuppliersTable,
		Schema: query.Schema[supplier]{
			Search: []func(supplier) string{
				func(s supplier) string { return s.Name },
				func(s supplier) string { return s.RegistrationNumber },
			},
			Keys: map[string]func(supplier) string{
				"id":          func(s supplier) string { return s.ID },
				"status":      func(s supplier) string { return s.Status },
				"category":    func(s supplier) string { return s.Category },
				"province":    func(s supplier) string { return s.Province },
				"risk_rating": func(s supplier) string { return s.RiskRating },
			},
			Numbers: map[string]func(supplier) float64{
				"bbbee_level":       func(s supplier) float64 { return float64(s.BbbeeLevel) },
				"performance_score": func(s supplier) float64 { return s.PerformanceScore },
			},
			Flags: map[string]func(supplier) bool{
				"verified":      func(s supplier) bool { return s.Verified },
				"tax_compliant": func(s supplier) bool { return s.TaxCompliant },
			},
			Sorts: map[string]query.SortKey[supplier]{
				"name":        query.TextKey(func(s supplier) string { return s.Name }),
				"performance": query.NumberKey(func(s supplier) float64 { return s.PerformanceScore }),
				"bbbee_level": query.NumberKey(func(s supplier) float64 { return float64(s.BbbeeLevel) }),
			},
		},
		DefaultOrder: query.By("name"),
		PageSize:     DefaultPageSize,
		ID:           func(s supplier) string { return s.ID },
		Columns: []store.Column[supplier]{
			{Header: "NAME", Value: func(s supplier) string { return s.Name }},
			{Header: "CATEGORY", Value: func(s supplier) string { return s.Category }},
			{Header: "PROVINCE", Value: func(s supplier) string { return s.Province }},
			{Header: "B-BBEE", Value: func(s supplier) string { return strconv.Itoa(s.BbbeeLevel) }},
			{Header: "SCORE", Value: func(s supplier) string { return strconv.FormatFloat(s.PerformanceScore, 'f', 1, 64) }},
			{Header: "RISK", Value: func(s supplier) string { return s.RiskRating }},
			{Header: "STATUS", Value: func(s supplier) string { return s.Status }},
		},
	}
}

// Audit defines the audit trail, newest first.
func Audit() store.Definition[auditEvent] {
	at := query.TimeValue(func(e auditEvent) time.Time { return e.Timestamp })
	return store.Definition[auditEvent]{
		Name: types.AuditTable,
		Schema: query.Schema[auditEvent]{
			Search: []func(auditEvent) string{
				func(e auditEvent) string { return e.Description },
				func(e auditEvent) string { return e.Actor },
				func(e auditEvent) string { return e.SubjectID },
			},
			Keys: map[string]func(auditEvent) string{
				"id":          func(e auditEvent) string { return e.ID },
				"actor":       func(e auditEvent) string { return e.Actor },
				"action":      func(e auditEvent) string { return e.Action },
				"module":      func(e auditEvent) string { return e.Module },
				"severity":    func(e auditEvent) string { return e.Severity },
				"entity_type": func(e auditEvent) string { return e.SubjectType },
				"entity_id":   func(e auditEvent) string { return e.SubjectID },
			},
			Numbers: map[string]func(auditEvent) float64{
				"timestamp": at,
			},
			Sorts: map[string]query.SortKey[auditEvent]{
				"timestamp": query.NumberKey(at),
				"actor":     query.TextKey(func(e auditEvent) string { return e.Actor }),
				"module":    query.TextKey(func(e auditEvent) string { return e.Module }),
			},
		},
		DefaultOrder: query.By("timestamp").Reverse(),
		PageSize:     DefaultPageSize,
		ID:           func(e auditEvent) string { return e.ID },
		Columns: []store.Column[auditEvent]{
			{Header: "WHEN", Value: func(e auditEvent) string { return e.Timestamp.UTC().Format(time.DateTime) }},
			{Header: "ACTOR", Value: func(e auditEvent) string { return e.Actor }},
			{Header: "ACTION", Value: func(e auditEvent) string { return e.Action }},
			{Header: "MODULE", Value: func(e auditEvent) string { return e.Module }},
			{Header: "ENTITY", Value: func(e auditEvent) string { return e.SubjectType + " " + e.SubjectID }},
			{Header: "SEVERITY", Value: func(e auditEvent) string { return e.Severity }},
		},
	}
}
