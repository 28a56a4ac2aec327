package features

import (
	"strconv"
	"time"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

type item = types.CatalogueItem

// Catalogue defines the catalogue browser. The "bbbee_level" range stands in
// for a maximum B-BBEE level; "popular" sorts featured items first when
// descending.
func Catalogue() store.Definition[item] {
	return store.Definition[item]{
		Name: types.CatalogueTable,
		Schema: query.Schema[item]{
			Search: []func(item) string{
				func(i item) string { return i.Name },
				func(i item) string { return i.Description },
				func(i item) string { return i.ItemCode },
				func(i item) string { return tags(i.Tags) },
			},
			Keys: map[string]func(item) string{
				"id":          func(i item) string { return i.ID },
				"category_id": func(i item) string { return i.CategoryID },
				"supplier_id": func(i item) string { return i.SupplierID },
				"status":      func(i item) string { return i.Status },
			},
			Numbers: map[string]func(item) float64{
				"unit_price":  func(i item) float64 { return i.UnitPrice },
				"bbbee_level": func(i item) float64 { return float64(i.BbbeeLevel) },
				"created_at":  query.TimeValue(func(i item) time.Time { return i.CreatedAt }),
			},
			Flags: map[string]func(item) bool{
				"in_stock": func(i item) bool { return i.InStock },
				"featured": func(i item) bool { return i.Featured },
			},
			Sorts: map[string]query.SortKey[item]{
				"name":       query.TextKey(func(i item) string { return i.Name }),
				"price":      query.NumberKey(func(i item) float64 { return i.UnitPrice }),
				"category":   query.TextKey(func(i item) string { return i.CategoryName }),
				"created_at": query.NumberKey(query.TimeValue(func(i item) time.Time { return i.CreatedAt })),
				"popular":    query.NumberKey(func(i item) float64 { return boolValue(i.Featured) }),
			},
		},
		DefaultOrder: query.By("name"),
		PageSize:     CataloguePageSize,
		ID:           func(i item) string { return i.ID },
		Columns: []store.Column[item]{
			{Header: "CODE", Value: func(i item) string { return i.ItemCode }},
			{Header: "NAME", Value: func(i item) string { return i.Name }},
			{Header: "CATEGORY", Value: func(i item) string { return i.CategoryName }},
			{Header: "SUPPLIER", Value: func(i item) string { return i.SupplierName }},
			{Header: "PRICE", Value: func(i item) string { return i.Currency + " " + money(i.UnitPrice) }},
			{Header: "STOCK", Value: func(i item) string { return yesNo(i.InStock) }},
			{Header: "B-BBEE", Value: func(i item) string { return strconv.Itoa(i.BbbeeLevel) }},
			{Header: "STATUS", Value: func(i item) string { return i.Status }},
		},
	}
}
