package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Eligibility Events
// ---------------------------------------------------------------------------

// EligibilityEvaluated is raised after an eligibility decision is made.
type EligibilityEvaluated struct {
	events.BaseEvent
	ProductID       string          `json:"product_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TenureMonths    int             `json:"tenure_months"`
	Decision        string          `json:"decision"`
	Score           int             `json:"score"`
	OfferedRate     decimal.Decimal `json:"offered_rate"`
}

func NewEligibilityEvaluated(
	applicationID, tenantID, productID string,
	amount decimal.Decimal, tenureMonths int,
	decision string, score int, offeredRate decimal.Decimal,
) EligibilityEvaluated {
	return EligibilityEvaluated{
		BaseEvent:       events.NewBaseEvent("finance.eligibility.evaluated", applicationID, "LoanApplication", tenantID),
		ProductID:       productID,
		RequestedAmount: amount,
		TenureMonths:    tenureMonths,
		Decision:        decision,
		Score:           score,
		OfferedRate:     offeredRate,
	}
}

// ---------------------------------------------------------------------------
// Prepayment Events
// ---------------------------------------------------------------------------

// PrepaymentQuoted is raised when a prepayment scenario is computed for a loan.
type PrepaymentQuoted struct {
	events.BaseEvent
	PrepaymentType    string          `json:"prepayment_type"`
	PrepaymentAmount  decimal.Decimal `json:"prepayment_amount"`
	PrepaymentCharges decimal.Decimal `json:"prepayment_charges"`
	TotalSavings      decimal.Decimal `json:"total_savings"`
	Recommendation    string          `json:"recommendation"`
	QuotedFor         time.Time       `json:"quoted_for"`
}

func NewPrepaymentQuoted(
	loanID, tenantID string,
	prepaymentType string,
	amount, charges, totalSavings decimal.Decimal,
	recommendation string, quotedFor time.Time,
) PrepaymentQuoted {
	return PrepaymentQuoted{
		BaseEvent:         events.NewBaseEvent("finance.prepayment.quoted", loanID, "Loan", tenantID),
		PrepaymentType:    prepaymentType,
		PrepaymentAmount:  amount,
		PrepaymentCharges: charges,
		TotalSavings:      totalSavings,
		Recommendation:    recommendation,
		QuotedFor:         quotedFor,
	}
}

// ---------------------------------------------------------------------------
// Schedule Events
// ---------------------------------------------------------------------------

// ScheduleAnalyzed is raised when a repayment schedule health report is produced.
type ScheduleAnalyzed struct {
	events.BaseEvent
	ReliabilityScore  int             `json:"reliability_score"`
	OverdueCount      int             `json:"overdue_count"`
	CompletionPercent decimal.Decimal `json:"completion_percent"`
	RiskTier          string          `json:"risk_tier"`
}

func NewScheduleAnalyzed(
	loanID, tenantID string,
	reliabilityScore, overdueCount int,
	completionPercent decimal.Decimal, riskTier string,
) ScheduleAnalyzed {
	return ScheduleAnalyzed{
		BaseEvent:         events.NewBaseEvent("finance.schedule.analyzed", loanID, "Loan", tenantID),
		ReliabilityScore:  reliabilityScore,
		OverdueCount:      overdueCount,
		CompletionPercent: completionPercent,
		RiskTier:          riskTier,
	}
}
