package dashboard

// DayLayout keys the per-day series (dd/MM/yyyy).
const DayLayout = "02/01/2006"

// Loan type labels broken out in DisbursedLoan. Other types are counted
// in the totals only.
const (
	TypeRefinancing    = "Refinancing"
	TypeCOERenewalLoan = "COE Renewal Loan"
	TypeUsedCarLoan    = "Used Car Loan"
	TypeNewCarLoan     = "New Car Loan"
)

type LoanTotals struct {
	PipelineAmount   float64 `json:"pipelineAmount"`
	ProcessingAmount float64 `json:"processingAmount"`
	DisbursedAmount  float64 `json:"disbursedAmount"`
}

type DisbursedByType struct {
	Refinancing    float64 `json:"refinancing"`
	COERenewalLoan float64 `json:"coeRenewalLoan"`
	UsedCarLoan    float64 `json:"usedCarLoan"`
	NewCarLoan     float64 `json:"newCarLoan"`
}

type Report struct {
	Loan               LoanTotals         `json:"loan"`
	DisbursedLoan      DisbursedByType    `json:"disbursedLoan"`
	NewLoanApplication map[string]int     `json:"newLoanApplication"`
	NewLoanAmount      map[string]float64 `json:"newLoanAmount"`
}

type AggregateInput struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}
