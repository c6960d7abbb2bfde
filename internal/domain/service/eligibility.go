package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Eligibility evaluator – weighted multi-factor admission checklist
// ---------------------------------------------------------------------------

// Check names used as keys in EligibilityResult.Checks.
const (
	CheckBasicEligibility = "basic_eligibility"
	CheckCreditScore      = "credit_score"
	CheckIncome           = "income"
	CheckEmployment       = "employment"
	CheckDebtToIncome     = "debt_to_income"
	CheckDocuments        = "documents"
	CheckBankAccount      = "bank_account"
	CheckFraud            = "fraud"
)

// Check weights (points out of 100; the raw sum is capped at 100).
const (
	weightBasic           = 15
	weightCreditMax       = 25
	weightIncome          = 20
	weightEmployment      = 10
	weightExperienceBonus = 5
	weightDTI             = 15
	weightDocuments       = 10
	weightBankAccount     = 5
	weightFraudLow        = 10
	weightFraudElevated   = 5
)

// Recommendation is the evaluator's affordability guidance, independent of
// the decision on the requested amount.
type Recommendation struct {
	MaxEligibleAmount decimal.Decimal
	Suggestions       []string
}

// EligibilityResult is the complete outcome of one evaluation. It is
// recomputed fresh per request and never mutated afterwards.
type EligibilityResult struct {
	Decision       valueobject.Decision
	Score          int // 0-100
	Checks         map[string]bool
	Reasons        []string // blocking shortfalls, human readable
	Conditions     []string // non-blocking obligations (manual review, EDD, data gaps)
	Pricing        *PricingResult
	Recommendation Recommendation
}

// EligibilityEngine runs the weighted checklist against an applicant and a
// product. Stateless; safe for concurrent use.
type EligibilityEngine struct {
	policy  Policy
	pricing *PricingEngine
}

// NewEligibilityEngine returns an evaluator bound to the given policy.
func NewEligibilityEngine(policy Policy) *EligibilityEngine {
	return &EligibilityEngine{
		policy:  policy,
		pricing: NewPricingEngine(policy),
	}
}

// Evaluate runs all eight checks and derives the decision.
//
// Decision rule: score >= ApproveScore with zero blocking reasons (and a
// known credit score) is APPROVED; score >= ReviewScore is REVIEW_REQUIRED
// with a manual-review condition; anything lower is REJECTED. APPROVED and
// REVIEW_REQUIRED results carry a pricing block.
func (e *EligibilityEngine) Evaluate(
	product model.Product,
	applicant model.Applicant,
	requestedAmount decimal.Decimal,
	requestedTenure int,
	fraud valueobject.FraudCheck,
) (EligibilityResult, error) {
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return EligibilityResult{}, validationErr("requested amount", "must be positive")
	}
	if requestedTenure < 1 {
		return EligibilityResult{}, validationErr("requested tenure", "must be at least 1 month")
	}

	var (
		score      int
		reasons    []string
		conditions []string
		checks     = make(map[string]bool, 8)
	)

	// 1. Basic eligibility: age band plus an active KYC-verified account.
	ageOK := applicant.Age >= e.policy.MinAge && applicant.Age <= e.policy.MaxAge
	accountOK := applicant.AccountActive && applicant.KYCVerified
	checks[CheckBasicEligibility] = ageOK && accountOK
	if checks[CheckBasicEligibility] {
		score += weightBasic
	} else {
		if !ageOK {
			reasons = append(reasons, fmt.Sprintf(
				"age %d is outside the eligible %d-%d band", applicant.Age, e.policy.MinAge, e.policy.MaxAge))
		}
		if !accountOK {
			reasons = append(reasons, "account must be active and KYC verified")
		}
	}

	// 2. Credit score. A missing score is a data gap: fail closed, never
	// invent one.
	creditGap := !applicant.HasCreditScore()
	minScore := e.policy.minCreditScore(product.Criteria.MinCreditScore)
	switch {
	case creditGap:
		checks[CheckCreditScore] = false
		conditions = append(conditions, "credit score unavailable: bureau pull required before any approval")
	case applicant.CreditScore >= minScore:
		checks[CheckCreditScore] = true
		score += creditPoints(applicant.CreditScore)
	default:
		checks[CheckCreditScore] = false
		reasons = append(reasons, fmt.Sprintf(
			"credit score %d is below the product minimum of %d", applicant.CreditScore, minScore))
	}

	// 3. Income: the greater of the product floor and coverage of the
	// requested amount.
	requiredIncome := requestedAmount.Mul(e.policy.IncomeCoveragePercent).Div(decimal.NewFromInt(100))
	if product.Criteria.MinMonthlyIncome.GreaterThan(requiredIncome) {
		requiredIncome = product.Criteria.MinMonthlyIncome
	}
	checks[CheckIncome] = applicant.MonthlyIncome.GreaterThanOrEqual(requiredIncome)
	if checks[CheckIncome] {
		score += weightIncome
	} else {
		reasons = append(reasons, fmt.Sprintf(
			"monthly income %s is below the required %s", applicant.MonthlyIncome, requiredIncome.Round(0)))
	}

	// 4. Employment type, with a tenure bonus for experienced applicants.
	checks[CheckEmployment] = product.Criteria.AcceptsEmployment(applicant.EmploymentType)
	if checks[CheckEmployment] {
		score += weightEmployment
		if applicant.WorkExperienceYears >= e.policy.ExperienceBonusYears {
			score += weightExperienceBonus
		}
	} else {
		reasons = append(reasons, fmt.Sprintf(
			"employment type %q is not accepted for this product", applicant.EmploymentType))
	}

	// 5. Debt-to-income including the EMI of the requested loan at the
	// product base rate.
	dtiOK, dtiReason := e.checkDTI(product, applicant, requestedAmount, requestedTenure)
	checks[CheckDebtToIncome] = dtiOK
	if dtiOK {
		score += weightDTI
	} else {
		reasons = append(reasons, dtiReason)
	}

	// 6. Required documents.
	missing := missingDocuments(product, applicant)
	checks[CheckDocuments] = len(missing) == 0
	if checks[CheckDocuments] {
		score += weightDocuments
	} else {
		for _, doc := range missing {
			reasons = append(reasons, fmt.Sprintf("required document %q is missing or unverified", doc))
		}
	}

	// 7. Bank account on file.
	checks[CheckBankAccount] = applicant.HasBankAccount
	if checks[CheckBankAccount] {
		score += weightBankAccount
	} else {
		reasons = append(reasons, "no verified bank account on file")
	}

	// 8. Fraud signal from the external collaborator.
	switch {
	case fraud.IsZero():
		checks[CheckFraud] = false
		conditions = append(conditions, "fraud screening unavailable: screening required before disbursal")
	case fraud.Score().LessThan(e.policy.FraudLowRiskThreshold):
		checks[CheckFraud] = true
		score += weightFraudLow
	case fraud.Score().LessThan(e.policy.FraudReviewThreshold):
		checks[CheckFraud] = true
		score += weightFraudElevated
	default:
		checks[CheckFraud] = false
		conditions = append(conditions, "enhanced due diligence required: elevated fraud score")
	}

	if score > 100 {
		score = 100
	}

	// Decision.
	decision := e.decide(score, len(reasons), creditGap || fraud.IsZero())
	if decision.Equal(valueobject.DecisionReviewRequired) {
		conditions = append(conditions, "manual review required before sanction")
	}

	result := EligibilityResult{
		Decision:   decision,
		Score:      score,
		Checks:     checks,
		Reasons:    reasons,
		Conditions: conditions,
		Recommendation: Recommendation{
			MaxEligibleAmount: e.maxEligibleAmount(product, applicant),
			Suggestions:       suggestions(checks),
		},
	}

	// Attach pricing for anything that may proceed.
	if !decision.Equal(valueobject.DecisionRejected) {
		riskScore := decimal.Zero
		if !fraud.IsZero() {
			riskScore = fraud.Score()
		}
		pricing, err := e.pricing.Quote(
			product, applicant.CreditScore, riskScore, valueobject.MarketConditions{},
			applicant.IsExistingCustomer, requestedAmount, requestedTenure,
		)
		if err != nil {
			return EligibilityResult{}, fmt.Errorf("price offer: %w", err)
		}
		result.Pricing = &pricing
	}

	return result, nil
}

// creditPoints scales the credit contribution: one point per 10 score points
// above 600, capped at the check weight.
func creditPoints(creditScore int) int {
	pts := (creditScore - 600) / 10
	if pts < 0 {
		return 0
	}
	if pts > weightCreditMax {
		return weightCreditMax
	}
	return pts
}

// checkDTI verifies that existing obligations plus the requested loan's EMI
// stay within the product's DTI ceiling.
func (e *EligibilityEngine) checkDTI(
	product model.Product,
	applicant model.Applicant,
	requestedAmount decimal.Decimal,
	requestedTenure int,
) (bool, string) {
	if applicant.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return false, "debt-to-income cannot be assessed without income"
	}

	newEMI, err := ComputeEMI(requestedAmount, requestedTenure, product.BaseInterestRate)
	if err != nil {
		return false, "debt-to-income cannot be assessed for the requested terms"
	}

	maxDTI := e.policy.maxDTI(product.Criteria.MaxDTIRatio)
	dti := applicant.ExistingEMI.Add(newEMI).
		Div(applicant.MonthlyIncome).
		Mul(decimal.NewFromInt(100))

	if dti.GreaterThan(maxDTI) {
		return false, fmt.Sprintf(
			"debt-to-income %s%% exceeds the %s%% ceiling", dti.Round(1), maxDTI)
	}
	return true, ""
}

func missingDocuments(product model.Product, applicant model.Applicant) []string {
	var missing []string
	for _, doc := range product.RequiredDocuments {
		if !applicant.DocumentVerified(doc) {
			missing = append(missing, doc)
		}
	}
	return missing
}

// decide applies the fixed 70/50 policy thresholds. A data gap (missing
// credit score or fraud screen) caps the outcome at REVIEW_REQUIRED.
func (e *EligibilityEngine) decide(score, blockingReasons int, dataGap bool) valueobject.Decision {
	switch {
	case score >= e.policy.ApproveScore && blockingReasons == 0 && !dataGap:
		return valueobject.DecisionApproved
	case score >= e.policy.ReviewScore:
		return valueobject.DecisionReviewRequired
	default:
		return valueobject.DecisionRejected
	}
}

// maxEligibleAmount back-solves the amortization formula for the principal
// the applicant's disposable EMI budget can carry over the assumed tenure,
// floored to the policy granularity.
//
//	budget = income * affordabilityRatio - existingEMI
//	P      = budget * ((1+r)^n - 1) / (r * (1+r)^n)
func (e *EligibilityEngine) maxEligibleAmount(product model.Product, applicant model.Applicant) decimal.Decimal {
	budget := applicant.MonthlyIncome.Mul(e.policy.AffordabilityRatio).Sub(applicant.ExistingEMI)
	if budget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	n := float64(e.policy.AffordabilityTenureMonths)
	r := product.BaseInterestRate.InexactFloat64() / 100 / 12

	var principal decimal.Decimal
	if r == 0 {
		principal = budget.Mul(decimal.NewFromInt(int64(e.policy.AffordabilityTenureMonths)))
	} else {
		factor := math.Pow(1+r, n)
		principal = decimal.NewFromFloat(budget.InexactFloat64() * (factor - 1) / (r * factor))
	}

	granularity := e.policy.AffordabilityRoundTo
	return principal.Div(granularity).RoundFloor(0).Mul(granularity)
}

// suggestions maps failed checks to actionable improvement hints.
func suggestions(checks map[string]bool) []string {
	var out []string
	if !checks[CheckCreditScore] {
		out = append(out, "build repayment history to lift the credit score above the product minimum")
	}
	if !checks[CheckIncome] {
		out = append(out, "request a smaller amount or a longer tenure to fit the income profile")
	}
	if !checks[CheckDebtToIncome] {
		out = append(out, "close existing obligations to bring debt-to-income inside the ceiling")
	}
	if !checks[CheckDocuments] {
		out = append(out, "complete verification of the listed documents")
	}
	if !checks[CheckBankAccount] {
		out = append(out, "link and verify a bank account")
	}
	return out
}
