package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// These scenarios walk a loan through its whole life: evaluation, pricing,
// disbursement schedule, a year of payments, a prepayment quote and a
// schedule health check, using the engines exactly as the use cases wire them.

func personalLoan() model.Product {
	return model.Product{
		ID:               "personal-loan-standard",
		Name:             "Personal Loan",
		Category:         "PERSONAL",
		Active:           true,
		MinAmount:        decimal.NewFromInt(50_000),
		MaxAmount:        decimal.NewFromInt(2_000_000),
		MinTenure:        6,
		MaxTenure:        60,
		BaseInterestRate: decimal.NewFromFloat(12.5),
		MinInterestRate:  decimal.NewFromInt(10),
		MaxInterestRate:  decimal.NewFromInt(24),
		Criteria: model.EligibilityCriteria{
			MinCreditScore:   650,
			MinMonthlyIncome: decimal.NewFromInt(25_000),
			EmploymentTypes:  []string{model.EmploymentSalaried, model.EmploymentSelfEmployed},
			MaxDTIRatio:      decimal.NewFromInt(60),
		},
		RequiredDocuments:      []string{"PAN", "AADHAAR"},
		PrepaymentChargeRate:   decimal.NewFromInt(4),
		AllowPartialPrepayment: true,
		MinPartialPrepayment:   decimal.NewFromInt(10_000),
	}
}

func salariedApplicant() model.Applicant {
	return model.Applicant{
		ID:                  "applicant-001",
		Age:                 32,
		AccountActive:       true,
		KYCVerified:         true,
		CreditScore:         760,
		MonthlyIncome:       decimal.NewFromInt(80_000),
		EmploymentType:      model.EmploymentSalaried,
		WorkExperienceYears: 5,
		ExistingEMI:         decimal.NewFromInt(5_000),
		Documents:           map[string]bool{"PAN": true, "AADHAAR": true},
		HasBankAccount:      true,
		IsExistingCustomer:  true,
	}
}

func TestLoanLifecycle_ApprovalToPrepaymentQuote(t *testing.T) {
	policy := service.DefaultPolicy()
	product := personalLoan()
	amount := decimal.NewFromInt(500_000)

	// 1. Eligibility: a clean salaried file approves with a priced offer.
	fraud, err := valueobject.NewFraudCheck(decimal.NewFromFloat(0.1), false, nil)
	require.NoError(t, err)

	eligibility, err := service.NewEligibilityEngine(policy).Evaluate(
		product, salariedApplicant(), amount, 36, fraud)
	require.NoError(t, err)
	require.True(t, eligibility.Decision.Equal(valueobject.DecisionApproved),
		"expected approval, got %s with reasons %v", eligibility.Decision, eligibility.Reasons)
	require.NotNil(t, eligibility.Pricing)

	// 2. Disbursement: the schedule is generated at the offered rate.
	terms := model.LoanTerms{
		Principal:         amount,
		AnnualRatePercent: eligibility.Pricing.InterestRate,
		TenureMonths:      36,
	}
	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := model.GenerateEMISchedule(terms, eligibility.Pricing.EMIAmount, start)
	require.Len(t, schedule, 36)
	assert.True(t, schedule[35].OutstandingPrincipal.IsZero())

	loan := model.Loan{
		ID:          "loan-001",
		TenantID:    "tenant-001",
		ProductID:   product.ID,
		Terms:       terms,
		EMIAmount:   eligibility.Pricing.EMIAmount,
		DisbursedAt: start,
	}

	// 3. A year of on-time payments.
	for i := 0; i < 12; i++ {
		paid, err := schedule[i].MarkPaid(schedule[i].DueDate, schedule[i].Amount, decimal.Zero)
		require.NoError(t, err)
		schedule[i] = paid
	}

	// 4. A partial prepayment quote against the live schedule.
	quote, err := service.NewPrepaymentCalculator(policy).Calculate(
		loan, product, schedule,
		service.PartialPrepayment(schedule[11].DueDate.AddDate(0, 0, 15), decimal.NewFromInt(100_000), true))
	require.NoError(t, err)

	require.NotNil(t, quote.RevisedSchedule)
	assert.Equal(t, 24, quote.Current.PendingEMIs)
	assert.Less(t, quote.RevisedSchedule.NewTenureMonths, 24,
		"prepaying a lakh must shave months off the tenure")
	assert.True(t, quote.Savings.InterestSavings.GreaterThan(decimal.Zero))

	// 5. The schedule health report reflects a flawless payer.
	analytics := service.NewScheduleAnalytics()
	asOf := schedule[11].DueDate.AddDate(0, 0, 15)

	summary := analytics.Summarize(schedule, asOf)
	assert.Equal(t, 12, summary.PaidCount)
	assert.Equal(t, 0, summary.OverdueCount)

	var paid, pending []model.EMIScheduleEntry
	for _, e := range schedule {
		if e.Status.Equal(valueobject.EMIStatusPaid) {
			paid = append(paid, e)
		} else {
			pending = append(pending, e)
		}
	}
	reliability := analytics.ScoreReliability(paid, nil)
	assert.Equal(t, 100, reliability.ReliabilityScore)

	projection := analytics.Project(pending, reliability)
	require.NotEmpty(t, projection.Entries)
	assert.True(t, projection.Entries[0].Risk.Equal(valueobject.RiskLevelLow))
	assert.Equal(t, 0, projection.CompletionDelayDays)
}

func TestLoanLifecycle_ThinFileGoesToReview(t *testing.T) {
	policy := service.DefaultPolicy()
	applicant := salariedApplicant()
	applicant.CreditScore = 0 // no bureau history

	fraud, err := valueobject.NewFraudCheck(decimal.NewFromFloat(0.1), false, nil)
	require.NoError(t, err)

	result, err := service.NewEligibilityEngine(policy).Evaluate(
		personalLoan(), applicant, decimal.NewFromInt(300_000), 24, fraud)
	require.NoError(t, err)

	assert.True(t, result.Decision.Equal(valueobject.DecisionReviewRequired),
		"a thin file must queue for review, never auto-approve")
	assert.NotEmpty(t, result.Conditions)
	require.NotNil(t, result.Pricing, "the review queue still needs an indicative price")
	assert.Contains(t, result.Pricing.Notes,
		"credit score unavailable: rate priced without credit adjustment")
}

func TestLoanLifecycle_ForeclosureClearsTheLoan(t *testing.T) {
	policy := service.DefaultPolicy()
	product := personalLoan()

	terms := model.LoanTerms{
		Principal:         decimal.NewFromInt(500_000),
		AnnualRatePercent: decimal.NewFromFloat(12.5),
		TenureMonths:      36,
	}
	emi, err := service.ComputeEMI(terms.Principal, terms.TenureMonths, terms.AnnualRatePercent)
	require.NoError(t, err)

	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := model.GenerateEMISchedule(terms, emi, start)
	for i := 0; i < 12; i++ {
		paid, err := schedule[i].MarkPaid(schedule[i].DueDate, schedule[i].Amount, decimal.Zero)
		require.NoError(t, err)
		schedule[i] = paid
	}

	loan := model.Loan{ID: "loan-001", Terms: terms, EMIAmount: emi, DisbursedAt: start}
	closureDate := schedule[11].DueDate.AddDate(0, 0, 15)

	quote, err := service.NewPrepaymentCalculator(policy).Calculate(
		loan, product, schedule, service.FullPrepayment(closureDate))
	require.NoError(t, err)

	require.NotNil(t, quote.LoanClosure)
	assert.Nil(t, quote.RevisedSchedule)
	assert.Equal(t, closureDate, quote.LoanClosure.ClosureDate)

	// Closure amount covers the outstanding balance plus foreclosure charges.
	assert.True(t, quote.LoanClosure.TotalPayableAmount.GreaterThan(quote.Details.OutstandingPrincipal))
	assert.True(t, quote.LoanClosure.TotalPayableAmount.Equal(
		quote.Details.OutstandingPrincipal.Add(quote.Details.Charges)))

	// And it beats paying the remaining 24 EMIs.
	assert.True(t, quote.LoanClosure.TotalPayableAmount.LessThan(quote.Current.TotalPayable))
}
