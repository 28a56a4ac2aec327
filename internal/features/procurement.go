package features

import (
	"time"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

type (
	requisition   = types.Requisition
	tender        = types.Tender
	contract      = types.Contract
	purchaseOrder = types.PurchaseOrder
)

// Requisitions defines the requisition list.
func Requisitions() store.Definition[requisition] {
	created := query.TimeValue(func(r requisition) time.Time { return r.CreatedAt })
	requiredBy := query.TimeValue(func(r requisition) time.Time { return r.RequiredBy })
	return store.Definition[requisition]{
		Name: types.RequisitionsTable,
		Schema: query.Schema[requisition]{
			Search: []func(requisition) string{
				func(r requisition) string { return r.Number },
				func(r requisition) string { return r.Title },
				func(r requisition) string { return r.Description },
				func(r requisition) string { return r.Requester },
			},
			Keys: map[string]func(requisition) string{
				"id":         func(r requisition) string { return r.ID },
				"status":     func(r requisition) string { return r.Status },
				"priority":   func(r requisition) string { return r.Priority },
				"department": func(r requisition) string { return r.Department },
			},
			Numbers: map[string]func(requisition) float64{
				"estimated_value": func(r requisition) float64 { return r.EstimatedValue },
				"created_at":      created,
				"required_by":     requiredBy,
			},
			Flags: map[string]func(requisition) bool{
				"urgent": func(r requisition) bool { return r.Urgent },
			},
			Sorts: map[string]query.SortKey[requisition]{
				"number":      query.TextKey(func(r requisition) string { return r.Number }),
				"title":       query.TextKey(func(r requisition) string { return r.Title }),
				"value":       query.NumberKey(func(r requisition) float64 { return r.EstimatedValue }),
				"created_at":  query.NumberKey(created),
				"required_by": query.NumberKey(requiredBy),
			},
		},
		DefaultOrder: query.By("created_at").Reverse(),
		PageSize:     DefaultPageSize,
		ID:           func(r requisition) string { return r.ID },
		Columns: []store.Column[requisition]{
			{Header: "NUMBER", Value: func(r requisition) string { return r.Number }},
			{Header: "TITLE", Value: func(r requisition) string { return r.Title }},
			{Header: "DEPARTMENT", Value: func(r requisition) string { return r.Department }},
			{Header: "VALUE", Value: func(r requisition) string { return money(r.EstimatedValue) }},
			{Header: "PRIORITY", Value: func(r requisition) string { return r.Priority }},
			{Header: "STATUS", Value: func(r requisition) string { return r.Status }},
		},
	}
}

// Tenders defines the tender list, also used by evaluation pages.
func Tenders() store.Definition[tender] {
	closing := query.TimeValue(func(t tender) time.Time { return t.ClosingDate })
	published := query.TimeValue(func(t tender) time.Time { return t.PublishedAt })
	return store.Definition[tender]{
		Name: types.TendersTable,
		Schema: query.Schema[tender]{
			Search: []func(tender) string{
				func(t tender) string { return t.Reference },
				func(t tender) string { return t.Title },
				func(t tender) string { return t.Description },
			},
			Keys: map[string]func(tender) string{
				"id":          func(t tender) string { return t.ID },
				"status":      func(t tender) string { return t.Status },
				"tender_type": func(t tender) string { return t.TenderType },
				"department":  func(t tender) string { return t.Department },
			},
			Numbers: map[string]func(tender) float64{
				"estimated_value": func(t tender) float64 { return t.EstimatedValue },
				"closing_date":    closing,
				"published_at":    published,
			},
			Flags: map[string]func(tender) bool{
				"local_content": func(t tender) bool { return t.LocalContent },
			},
			Sorts: map[string]query.SortKey[tender]{
				"reference":    query.TextKey(func(t tender) string { return t.Reference }),
				"title":        query.TextKey(func(t tender) string { return t.Title }),
				"value":        query.NumberKey(func(t tender) float64 { return t.EstimatedValue }),
				"closing_date": query.NumberKey(closing),
			},
		},
		DefaultOrder: query.By("closing_date"),
		PageSize:     DefaultPageSize,
		ID:           func(t tender) string { return t.ID },
		Columns: []store.Column[tender]{
			{Header: "REFERENCE", Value: func(t tender) string { return t.Reference }},
			{Header: "TITLE", Value: func(t tender) string { return t.Title }},
			{Header: "TYPE", Value: func(t tender) string { return t.TenderType }},
			{Header: "VALUE", Value: func(t tender) string { return money(t.EstimatedValue) }},
			{Header: "CLOSES", Value: func(t tender) string { return date(t.ClosingDate) }},
			{Header: "STATUS", Value: func(t tender) string { return t.Status }},
		},
	}
}

// Contracts defines the contract register.
func Contracts() store.Definition[contract] {
	ends := query.TimeValue(func(c contract) time.Time { return c.EndDate })
	return store.Definition[contract]{
		Name: types.ContractsTable,
		Schema: query.Schema[contract]{
			Search: []func(contract) string{
				func(c contract) string { return c.Number },
				func(c contract) string { return c.Title },
				func(c contract) string { return c.SupplierName },
			},
			Keys: map[string]func(contract) string{
				"id":            func(c contract) string { return c.ID },
				"status":        func(c contract) string { return c.Status },
				"supplier_id":   func(c contract) string { return c.SupplierID },
				"contract_type": func(c contract) string { return c.ContractType },
				"risk_level":    func(c contract) string { return c.RiskLevel },
			},
			Numbers: map[string]func(contract) float64{
				"value":    func(c contract) float64 { return c.Value },
				"end_date": ends,
			},
			Flags: map[string]func(contract) bool{
				"auto_renew": func(c contract) bool { return c.AutoRenew },
			},
			Sorts: map[string]query.SortKey[contract]{
				"number":   query.TextKey(func(c contract) string { return c.Number }),
				"supplier": query.TextKey(func(c contract) string { return c.SupplierName }),
				"value":    query.NumberKey(func(c contract) float64 { return c.Value }),
				"end_date": query.NumberKey(ends),
			},
		},
		DefaultOrder: query.By("end_date"),
		PageSize:     DefaultPageSize,
		ID:           func(c contract) string { return c.ID },
		Columns: []store.Column[contract]{
			{Header: "NUMBER", Value: func(c contract) string { return c.Number }},
			{Header: "TITLE", Value: func(c contract) string { return c.Title }},
			{Header: "SUPPLIER", Value: func(c contract) string { return c.SupplierName }},
			{Header: "VALUE", Value: func(c contract) string { return money(c.Value) }},
			{Header: "ENDS", Value: func(c contract) string { return date(c.EndDate) }},
			{Header: "RISK", Value: func(c contract) string { return c.RiskLevel }},
			{Header: "STATUS", Value: func(c contract) string { return c.Status }},
		},
	}
}

// PurchaseOrders defines the purchase order list, also used by goods
// receipt.
func PurchaseOrders() store.Definition[purchaseOrder] {
	ordered := query.TimeValue(func(p purchaseOrder) time.Time { return p.OrderDate })
	delivery := query.TimeValue(func(p purchaseOrder) time.Time { return p.DeliveryDate })
	return store.Definition[purchaseOrder]{
		Name: types.PurchaseOrdersTable,
		Schema: query.Schema[purchaseOrder]{
			Search: []func(purchaseOrder) string{
				func(p purchaseOrder) string { return p.Number },
				func(p purchaseOrder) string { return p.Title },
				func(p purchaseOrder) string { return p.SupplierName },
			},
			Keys: map[string]func(purchaseOrder) string{
				"id":          func(p purchaseOrder) string { return p.ID },
				"status":      func(p purchaseOrder) string { return p.Status },
				"supplier_id": func(p purchaseOrder) string { return p.SupplierID },
				"contract_id": func(p purchaseOrder) string { return p.ContractID },
				"department":  func(p purchaseOrder) string { return p.Department },
			},
			Numbers: map[string]func(purchaseOrder) float64{
				"total_amount":  func(p purchaseOrder) float64 { return p.TotalAmount },
				"order_date":    ordered,
				"delivery_date": delivery,
			},
			Sorts: map[string]query.SortKey[purchaseOrder]{
				"number":        query.TextKey(func(p purchaseOrder) string { return p.Number }),
				"supplier":      query.TextKey(func(p purchaseOrder) string { return p.SupplierName }),
				"amount":        query.NumberKey(func(p purchaseOrder) float64 { return p.TotalAmount }),
				"order_date":    query.NumberKey(ordered),
				"delivery_date": query.NumberKey(delivery),
			},
		},
		DefaultOrder: query.By("order_date").Reverse(),
		PageSize:     DefaultPageSize,
		ID:           func(p purchaseOrder) string { return p.ID },
		Columns: []store.Column[purchaseOrder]{
			{Header: "NUMBER", Value: func(p purchaseOrder) string { return p.Number }},
			{Header: "SUPPLIER", Value: func(p purchaseOrder) string { return p.SupplierName }},
			{Header: "AMOUNT", Value: func(p purchaseOrder) string { return p.Currency + " " + money(p.TotalAmount) }},
			{Header: "ORDERED", Value: func(p purchaseOrder) string { return date(p.OrderDate) }},
			{Header: "DELIVERY", Value: func(p purchaseOrder) string { return date(p.DeliveryDate) }},
			{Header: "STATUS", Value: func(p purchaseOrder) string { return p.Status }},
		},
	}
}
