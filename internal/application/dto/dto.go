package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ApplicantData is the caller-supplied applicant snapshot. A zero CreditScore
// means no bureau score was supplied; the use case attempts a bureau pull
// before evaluation.
type ApplicantData struct {
	ApplicantID         string          `json:"applicant_id"`
	Age                 int             `json:"age"`
	AccountActive       bool            `json:"account_active"`
	KYCVerified         bool            `json:"kyc_verified"`
	CreditScore         int             `json:"credit_score,omitempty"`
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	EmploymentType      string          `json:"employment_type"`
	WorkExperienceYears int             `json:"work_experience_years"`
	ExistingEMI         decimal.Decimal `json:"existing_emi"`
	Documents           map[string]bool `json:"documents,omitempty"`
	HasBankAccount      bool            `json:"has_bank_account"`
	IsExistingCustomer  bool            `json:"is_existing_customer"`
}

// EvaluateEligibilityRequest carries one eligibility evaluation.
type EvaluateEligibilityRequest struct {
	TenantID        string          `json:"tenant_id"`
	ApplicationID   string          `json:"application_id"`
	ProductID       string          `json:"product_id"`
	Applicant       ApplicantData   `json:"applicant"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TenureMonths    int             `json:"tenure_months"`
}

// QuotePrepaymentRequest carries one prepayment simulation.
type QuotePrepaymentRequest struct {
	TenantID       string          `json:"tenant_id"`
	LoanID         string          `json:"loan_id"`
	PrepaymentType string          `json:"prepayment_type"` // FULL or PARTIAL
	Amount         decimal.Decimal `json:"amount,omitempty"`
	ReduceEMI      bool            `json:"reduce_emi,omitempty"` // partial only; default reduces tenure
	AsOfDate       time.Time       `json:"as_of_date"`
}

// AnalyzeScheduleRequest identifies a schedule to analyze as of a date.
type AnalyzeScheduleRequest struct {
	TenantID string    `json:"tenant_id"`
	LoanID   string    `json:"loan_id"`
	AsOfDate time.Time `json:"as_of_date"`
}

// ComputeAmortizationRequest carries the terms for a standalone amortization.
type ComputeAmortizationRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenureMonths      int             `json:"tenure_months"`
	StartDate         time.Time       `json:"start_date,omitempty"`
	IncludeSchedule   bool            `json:"include_schedule,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PricingResponse is the external representation of a priced offer.
type PricingResponse struct {
	InterestRate         decimal.Decimal `json:"interest_rate"`
	ProcessingFee        decimal.Decimal `json:"processing_fee"`
	GSTOnFees            decimal.Decimal `json:"gst_on_fees"`
	InsurancePremium     decimal.Decimal `json:"insurance_premium"`
	DocumentationCharges decimal.Decimal `json:"documentation_charges"`
	TotalFees            decimal.Decimal `json:"total_fees"`
	EMIAmount            decimal.Decimal `json:"emi_amount"`
	TotalPayment         decimal.Decimal `json:"total_payment"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	APR                  decimal.Decimal `json:"apr"`
	Notes                []string        `json:"notes,omitempty"`
}

// EligibilityResponse is the external representation of an evaluation.
type EligibilityResponse struct {
	ApplicationID     string           `json:"application_id"`
	Decision          string           `json:"decision"`
	Score             int              `json:"score"`
	Checks            map[string]bool  `json:"checks"`
	Reasons           []string         `json:"reasons,omitempty"`
	Conditions        []string         `json:"conditions,omitempty"`
	Pricing           *PricingResponse `json:"pricing,omitempty"`
	MaxEligibleAmount decimal.Decimal  `json:"max_eligible_amount"`
	Suggestions       []string         `json:"suggestions,omitempty"`
	FromCache         bool             `json:"from_cache,omitempty"`
	EvaluatedAt       time.Time        `json:"evaluated_at"`
}

// PrepaymentDetailsResponse echoes the amounts a quote was computed from.
type PrepaymentDetailsResponse struct {
	Type                 string          `json:"type"`
	Date                 time.Time       `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	Charges              decimal.Decimal `json:"charges"`
	NetAmount            decimal.Decimal `json:"net_amount"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
}

// CurrentScenarioResponse is the do-nothing baseline of a prepayment quote.
type CurrentScenarioResponse struct {
	EMIAmount            decimal.Decimal `json:"emi_amount"`
	PendingEMIs          int             `json:"pending_emis"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	TotalPayable         decimal.Decimal `json:"total_payable"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
}

// SavingsResponse quantifies the benefit of prepaying.
type SavingsResponse struct {
	InterestSavings   decimal.Decimal `json:"interest_savings"`
	TotalSavings      decimal.Decimal `json:"total_savings"`
	PercentageSavings decimal.Decimal `json:"percentage_savings"`
}

// RevisedScheduleResponse describes the loan after a partial prepayment.
type RevisedScheduleResponse struct {
	TenureReduction bool            `json:"tenure_reduction"`
	NewOutstanding  decimal.Decimal `json:"new_outstanding"`
	NewTenureMonths int             `json:"new_tenure_months"`
	NewEMIAmount    decimal.Decimal `json:"new_emi_amount"`
	MonthsReduced   int             `json:"months_reduced"`
	EMIReduced      decimal.Decimal `json:"emi_reduced"`
}

// LoanClosureResponse describes a full foreclosure.
type LoanClosureResponse struct {
	TotalPayableAmount decimal.Decimal `json:"total_payable_amount"`
	ClosureDate        time.Time       `json:"closure_date"`
}

// BreakEvenResponse is the months-to-recover-charges verdict.
type BreakEvenResponse struct {
	Months         int    `json:"months"`
	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
}

// PrepaymentResponse is the external representation of a prepayment quote.
type PrepaymentResponse struct {
	LoanID          string                    `json:"loan_id"`
	Details         PrepaymentDetailsResponse `json:"details"`
	Current         CurrentScenarioResponse   `json:"current_scenario"`
	Savings         SavingsResponse           `json:"savings"`
	RevisedSchedule *RevisedScheduleResponse  `json:"revised_schedule,omitempty"`
	LoanClosure     *LoanClosureResponse      `json:"loan_closure,omitempty"`
	BreakEven       BreakEvenResponse         `json:"break_even"`
}

// ScheduleEntryResponse is one period of a repayment schedule.
type ScheduleEntryResponse struct {
	EMINumber            int             `json:"emi_number"`
	DueDate              time.Time       `json:"due_date"`
	Amount               decimal.Decimal `json:"amount"`
	PrincipalAmount      decimal.Decimal `json:"principal_amount"`
	InterestAmount       decimal.Decimal `json:"interest_amount"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	Status               string          `json:"status"`
	PaidDate             *time.Time      `json:"paid_date,omitempty"`
	PaidAmount           decimal.Decimal `json:"paid_amount,omitempty"`
	LateFee              decimal.Decimal `json:"late_fee,omitempty"`
}

// ScheduleSummaryResponse aggregates the schedule as of the request date.
type ScheduleSummaryResponse struct {
	TotalEntries      int                    `json:"total_entries"`
	PaidCount         int                    `json:"paid_count"`
	PendingCount      int                    `json:"pending_count"`
	OverdueCount      int                    `json:"overdue_count"`
	CompletionPercent int                    `json:"completion_percent"`
	TotalPaid         decimal.Decimal        `json:"total_paid"`
	TotalPending      decimal.Decimal        `json:"total_pending"`
	TotalOverdue      decimal.Decimal        `json:"total_overdue"`
	NextDue           *ScheduleEntryResponse `json:"next_due,omitempty"`
	LastPaid          *ScheduleEntryResponse `json:"last_paid,omitempty"`
}

// ReliabilityResponse scores observed repayment behaviour.
type ReliabilityResponse struct {
	OnTimePercent    int `json:"on_time_percent"`
	AverageDelayDays int `json:"average_delay_days"`
	ReliabilityScore int `json:"reliability_score"`
}

// ProjectedEntryResponse is one forward-looking schedule entry.
type ProjectedEntryResponse struct {
	EMINumber            int             `json:"emi_number"`
	DueDate              time.Time       `json:"due_date"`
	ProjectedPaymentDate time.Time       `json:"projected_payment_date"`
	Amount               decimal.Decimal `json:"amount"`
	Risk                 string          `json:"risk"`
}

// ProjectionResponse extrapolates the remaining schedule.
type ProjectionResponse struct {
	Entries             []ProjectedEntryResponse `json:"entries,omitempty"`
	ScheduledCompletion time.Time                `json:"scheduled_completion"`
	ProjectedCompletion time.Time                `json:"projected_completion"`
	CompletionDelayDays int                      `json:"completion_delay_days"`
}

// ScheduleAnalysisResponse is the full schedule health report.
type ScheduleAnalysisResponse struct {
	LoanID      string                  `json:"loan_id"`
	AsOfDate    time.Time               `json:"as_of_date"`
	Summary     ScheduleSummaryResponse `json:"summary"`
	Reliability ReliabilityResponse     `json:"reliability"`
	Projection  ProjectionResponse      `json:"projection"`
}

// AmortizationResponse is a standalone amortization quote.
type AmortizationResponse struct {
	EMIAmount     decimal.Decimal         `json:"emi_amount"`
	TotalPayment  decimal.Decimal         `json:"total_payment"`
	TotalInterest decimal.Decimal         `json:"total_interest"`
	Schedule      []ScheduleEntryResponse `json:"schedule,omitempty"`
}
