package types

// Supplier risk ratings.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Supplier is a registered vendor.
type Supplier struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Category           string  `json:"category"`
	Province           string  `json:"province"`
	Status             string  `json:"status"`
	RiskRating         string  `json:"risk_rating"`
	BbbeeLevel         int     `json:"bbbee_level"`
	PerformanceScore   float64 `json:"performance_score"`
	Verified           bool    `json:"verified"`
	TaxCompliant       bool    `json:"tax_compliant"`
}

func (s *Supplier) EntityID() string      { return s.ID }
func (s *Supplier) SetEntityID(id string) { s.ID = id }
