package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/port"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// EvaluateEligibilityUseCase orchestrates an eligibility evaluation: product
// lookup, bureau score fill-in, fraud screening, the engine run, decision
// persistence and event publication. Results are memoized in the quote cache
// keyed by a request fingerprint.
type EvaluateEligibilityUseCase struct {
	productRepo  port.ProductRepository
	decisionRepo port.DecisionRepository
	creditClient port.CreditBureauClient
	fraudClient  port.FraudDetector
	cache        port.QuoteCache
	publisher    port.EventPublisher
	engine       *service.EligibilityEngine
	quoteTTL     time.Duration
}

// NewEvaluateEligibilityUseCase wires dependencies.
func NewEvaluateEligibilityUseCase(
	productRepo port.ProductRepository,
	decisionRepo port.DecisionRepository,
	creditClient port.CreditBureauClient,
	fraudClient port.FraudDetector,
	cache port.QuoteCache,
	publisher port.EventPublisher,
	engine *service.EligibilityEngine,
	quoteTTL time.Duration,
) *EvaluateEligibilityUseCase {
	return &EvaluateEligibilityUseCase{
		productRepo:  productRepo,
		decisionRepo: decisionRepo,
		creditClient: creditClient,
		fraudClient:  fraudClient,
		cache:        cache,
		publisher:    publisher,
		engine:       engine,
		quoteTTL:     quoteTTL,
	}
}

// Execute evaluates eligibility for the requested product and terms.
func (uc *EvaluateEligibilityUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateEligibilityRequest,
) (dto.EligibilityResponse, error) {
	now := time.Now().UTC()

	// 1. Serve a memoized evaluation when the identical request was priced
	// recently. Cache failures degrade to a fresh evaluation.
	key := fingerprint(req)
	if payload, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var cached dto.EligibilityResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			cached.FromCache = true
			return cached, nil
		}
	}

	// 2. Load the product.
	product, err := uc.productRepo.FindByID(ctx, req.TenantID, req.ProductID)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("find product: %w", err)
	}

	applicant := toApplicant(req.Applicant)

	// 3. Fill in a missing bureau score. A failed pull leaves the score
	// absent and the engine fails closed on the gap.
	if !applicant.HasCreditScore() {
		if score, err := uc.creditClient.GetCreditScore(ctx, applicant.ID); err == nil {
			applicant.CreditScore = score
		}
	}

	// 4. Fraud screen. An unavailable screen is a data gap, not a failure.
	fraud, err := uc.fraudClient.CheckApplicant(ctx, req.TenantID, applicant.ID)
	if err != nil {
		fraud = valueobject.FraudCheck{}
	}

	// 5. Run the engine.
	result, err := uc.engine.Evaluate(product, applicant, req.RequestedAmount, req.TenureMonths, fraud)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("evaluate eligibility: %w", err)
	}

	// 6. Persist the decision snapshot for audit.
	record := port.DecisionRecord{
		ID:            uuid.New().String(),
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ProductID:     req.ProductID,
		Decision:      result.Decision,
		Score:         result.Score,
		Reasons:       result.Reasons,
		Conditions:    result.Conditions,
		EvaluatedAt:   now,
	}
	if err := uc.decisionRepo.Save(ctx, record); err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("save decision: %w", err)
	}

	// 7. Publish the domain event.
	offeredRate := product.BaseInterestRate
	if result.Pricing != nil {
		offeredRate = result.Pricing.InterestRate
	}
	evt := event.NewEligibilityEvaluated(
		req.ApplicationID, req.TenantID, req.ProductID,
		req.RequestedAmount, req.TenureMonths,
		result.Decision.String(), result.Score, offeredRate,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	resp := toEligibilityResponse(req.ApplicationID, result, now)

	// 8. Memoize. Best effort; an unreachable cache never fails the request.
	if payload, err := json.Marshal(resp); err == nil {
		_ = uc.cache.Set(ctx, key, payload, uc.quoteTTL)
	}

	return resp, nil
}

// fingerprint derives a deterministic cache key from the request contents.
func fingerprint(req dto.EvaluateEligibilityRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return "eligibility:" + hex.EncodeToString(sum[:])
}

func toApplicant(a dto.ApplicantData) model.Applicant {
	return model.Applicant{
		ID:                  a.ApplicantID,
		Age:                 a.Age,
		AccountActive:       a.AccountActive,
		KYCVerified:         a.KYCVerified,
		CreditScore:         a.CreditScore,
		MonthlyIncome:       a.MonthlyIncome,
		EmploymentType:      a.EmploymentType,
		WorkExperienceYears: a.WorkExperienceYears,
		ExistingEMI:         a.ExistingEMI,
		Documents:           a.Documents,
		HasBankAccount:      a.HasBankAccount,
		IsExistingCustomer:  a.IsExistingCustomer,
	}
}

func toEligibilityResponse(applicationID string, result service.EligibilityResult, evaluatedAt time.Time) dto.EligibilityResponse {
	resp := dto.EligibilityResponse{
		ApplicationID:     applicationID,
		Decision:          result.Decision.String(),
		Score:             result.Score,
		Checks:            result.Checks,
		Reasons:           result.Reasons,
		Conditions:        result.Conditions,
		MaxEligibleAmount: result.Recommendation.MaxEligibleAmount,
		Suggestions:       result.Recommendation.Suggestions,
		EvaluatedAt:       evaluatedAt,
	}
	if result.Pricing != nil {
		resp.Pricing = toPricingResponse(*result.Pricing)
	}
	return resp
}

func toPricingResponse(p service.PricingResult) *dto.PricingResponse {
	return &dto.PricingResponse{
		InterestRate:         p.InterestRate,
		ProcessingFee:        p.ProcessingFee,
		GSTOnFees:            p.GSTOnFees,
		InsurancePremium:     p.InsurancePremium,
		DocumentationCharges: p.DocumentationCharges,
		TotalFees:            p.TotalFees,
		EMIAmount:            p.EMIAmount,
		TotalPayment:         p.TotalPayment,
		TotalInterest:        p.TotalInterest,
		APR:                  p.APR,
		Notes:                p.Notes,
	}
}
