package router

// Kind names one navigable page. The set is closed; the zero value is
// Dashboard.
type Kind int

const (
	Dashboard Kind = iota

	RequisitionsList
	RequisitionsCreate
	RequisitionsEdit

	TendersList
	TendersCreate
	TendersEdit
	TendersPublication
	TendersDeviation

	EvaluationList
	EvaluationScoring

	ContractsList
	ContractsCreate
	ContractsEdit
	ContractsMilestones

	PurchaseOrdersList
	PurchaseOrdersCreate
	PurchaseOrdersEdit

	GoodsReceiptList

	SuppliersRegistry
	SuppliersPerformance
	SuppliersRisk

	SupplierPortalDashboard

	CatalogueList
	CatalogueAdmin

	AnalyticsDashboard
	GrcDashboard
	AuditTrail
	NbacReviews

	ReverseAuctionList
	ReverseAuctionLive

	DocumentsLibrary
	AiAssistantChat

	SourcingPlanList
	SourcingPlanCreate
	SourcingPlanEdit

	BbbeeGoals
	AgsaReviews
	MobileSupplierApp

	kindCount
)

// kindInfo holds each kind's display name and path pattern. Order here is
// the match order of the default table.
var kindInfo = [kindCount]struct {
	name    string
	pattern string
}{
	Dashboard: {"dashboard", "/"},

	RequisitionsList:   {"requisitions", "/requisitions"},
	RequisitionsCreate: {"requisitions-create", "/requisitions/new"},
	RequisitionsEdit:   {"requisitions-edit", "/requisitions/:id/edit"},

	TendersList:        {"tenders", "/tenders"},
	TendersCreate:      {"tenders-create", "/tenders/new"},
	TendersEdit:        {"tenders-edit", "/tenders/:id/edit"},
	TendersPublication: {"tenders-publication", "/tenders/:id/publication"},
	TendersDeviation:   {"tenders-deviation", "/tenders/:id/deviation"},

	EvaluationList:    {"evaluation", "/evaluation"},
	EvaluationScoring: {"evaluation-scoring", "/evaluation/:id/scoring"},

	ContractsList:       {"contracts", "/contracts"},
	ContractsCreate:     {"contracts-create", "/contracts/new"},
	ContractsEdit:       {"contracts-edit", "/contracts/:id/edit"},
	ContractsMilestones: {"contracts-milestones", "/contracts/:id/milestones"},

	PurchaseOrdersList:   {"purchase-orders", "/purchase-orders"},
	PurchaseOrdersCreate: {"purchase-orders-create", "/purchase-orders/new"},
	PurchaseOrdersEdit:   {"purchase-orders-edit", "/purchase-orders/:id/edit"},

	GoodsReceiptList: {"goods-receipt", "/goods-receipt"},

	SuppliersRegistry:    {"suppliers", "/suppliers"},
	SuppliersPerformance: {"suppliers-performance", "/suppliers/performance"},
	SuppliersRisk:        {"suppliers-risk", "/suppliers/risk"},

	SupplierPortalDashboard: {"supplier-portal", "/supplier-portal"},

	CatalogueList:  {"catalogue", "/catalogue"},
	CatalogueAdmin: {"catalogue-admin", "/catalogue/admin"},

	AnalyticsDashboard: {"analytics", "/analytics"},
	GrcDashboard:       {"grc", "/grc"},
	AuditTrail:         {"audit", "/audit"},
	NbacReviews:        {"nbac", "/nbac"},

	ReverseAuctionList: {"reverse-auction", "/reverse-auction"},
	ReverseAuctionLive: {"reverse-auction-live", "/reverse-auction/:id/live"},

	DocumentsLibrary: {"documents", "/documents"},
	AiAssistantChat:  {"ai-assistant", "/ai-assistant"},

	SourcingPlanList:   {"sourcing-plan", "/sourcing-plan"},
	SourcingPlanCreate: {"sourcing-plan-create", "/sourcing-plan/new"},
	SourcingPlanEdit:   {"sourcing-plan-edit", "/sourcing-plan/:id/edit"},

	BbbeeGoals:        {"bbbee", "/bbbee"},
	AgsaReviews:       {"agsa", "/agsa"},
	MobileSupplierApp: {"mobile", "/mobile"},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) known() bool { return k >= 0 && k < kindCount }

// String returns the kind's kebab-case name.
func (k Kind) String() string {
	if !k.known() {
		return "unknown"
	}
	return kindInfo[k].name
}

// HasID reports whether routes of this kind carry an identifier.
func (k Kind) HasID() bool {
	p, ok := DefaultTable.byKind[k]
	return ok && p.HasID()
}

// ParseKind looks a kind up by its String name.
func ParseKind(name string) (Kind, bool) {
	for k := range kindCount {
		if kindInfo[k].name == name {
			return k, true
		}
	}
	return Dashboard, false
}
