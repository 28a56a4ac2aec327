// Package features defines the per-feature stores: which fields of each
// entity type are searchable, filterable and sortable, how they render, and
// which route kinds mount them.
package features

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// Default page sizes.
const (
	DefaultPageSize   = 10
	CataloguePageSize = 12
	DocumentsPageSize = 24
)

// Info describes one registered feature.
type Info struct {
	Name  string
	Title string
	Kinds []router.Kind
}

type registration struct {
	Info
	build func(c types.Cupboard, opts []store.Option) store.Feature
}

func register[E any](info Info, def func() store.Definition[E]) registration {
	return registration{
		Info: info,
		build: func(c types.Cupboard, opts []store.Option) store.Feature {
			var fetch store.Fetcher[E]
			if c != nil {
				fetch = FromTable[E](c, info.Name)
			}
			return store.New(def(), fetch, opts...)
		},
	}
}

var registry = []registration{
	register(Info{
		Name:  types.CatalogueTable,
		Title: "Catalogue",
		Kinds: []router.Kind{router.CatalogueList, router.CatalogueAdmin},
	}, Catalogue),
	register(Info{
		Name:  types.DocumentsTable,
		Title: "Documents",
		Kinds: []router.Kind{router.DocumentsLibrary},
	}, Documents),
	register(Info{
		Name:  types.RequisitionsTable,
		Title: "Requisitions",
		Kinds: []router.Kind{router.RequisitionsList, router.RequisitionsCreate, router.RequisitionsEdit},
	}, Requisitions),
	register(Info{
		Name:  types.TendersTable,
		Title: "Tenders",
		Kinds: []router.Kind{
			router.TendersList, router.TendersCreate, router.TendersEdit,
			router.TendersPublication, router.TendersDeviation,
			router.EvaluationList, router.EvaluationScoring,
		},
	}, Tenders),
	register(Info{
		Name:  types.ContractsTable,
		Title: "Contracts",
		Kinds: []router.Kind{router.ContractsList, router.ContractsCreate, router.ContractsEdit, router.ContractsMilestones},
	}, Contracts),
	register(Info{
		Name:  types.PurchaseOrdersTable,
		Title: "Purchase orders",
		Kinds: []router.Kind{
			router.PurchaseOrdersList, router.PurchaseOrdersCreate, router.PurchaseOrdersEdit,
			router.GoodsReceiptList,
		},
	}, PurchaseOrders),
	register(Info{
		Name:  types.SuppliersTable,
		Title: "Suppliers",
		Kinds: []router.Kind{
			router.SuppliersRegistry, router.SuppliersPerformance, router.SuppliersRisk,
			router.SupplierPortalDashboard, router.BbbeeGoals,
		},
	}, Suppliers),
	register(Info{
		Name:  types.AuditTable,
		Title: "Audit trail",
		Kinds: []router.Kind{router.AuditTrail, router.AgsaReviews},
	}, Audit),
}

// All lists the registered features in display order.
func All() []Info {
	out := make([]Info, len(registry))
	for i, r := range registry {
		out[i] = r.Info
	}
	return out
}

// Lookup returns the registered feature with the given name.
func Lookup(name string) (Info, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r.Info, true
		}
	}
	return Info{}, false
}

// ForKind returns the feature a route kind mounts. Kinds without a data
// page, such as Dashboard, report false.
func ForKind(k router.Kind) (Info, bool) {
	for _, r := range registry {
		for _, rk := range r.Kinds {
			if rk == k {
				return r.Info, true
			}
		}
	}
	return Info{}, false
}

// New builds one store per registered feature, each fetching from its table
// in c. A nil cupboard yields stores without a data source.
func New(c types.Cupboard, opts ...store.Option) map[string]store.Feature {
	out := make(map[string]store.Feature, len(registry))
	for _, r := range registry {
		out[r.Name] = r.build(c, opts)
	}
	return out
}

// FromTable adapts a cupboard table to a store fetcher. Entities come back
// from the table as *E.
func FromTable[E any](c types.Cupboard, table string) store.Fetcher[E] {
	return func(ctx context.Context) ([]E, error) {
		t, err := c.GetTable(table)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", table, err)
		}
		rows, err := t.Fetch(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", table, err)
		}
		out := make([]E, 0, len(rows))
		for _, row := range rows {
			switch v := row.(type) {
			case *E:
				out = append(out, *v)
			case E:
				out = append(out, v)
			default:
				return nil, fmt.Errorf("fetch %s: unexpected %T: %w", table, row, types.ErrInvalidData)
			}
		}
		return out, nil
	}
}

func money(v float64) string { return humanize.CommafWithDigits(v, 2) }

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// tags joins tags one per line so a search cannot match across two of them.
func tags(ts []string) string { return strings.Join(ts, "\n") }
