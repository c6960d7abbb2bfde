package grpc

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/application/usecase"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// tenantIDFromContext extracts the tenant ID from JWT claims in the context.
func tenantIDFromContext(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "authentication required")
	}
	return claims.TenantID.String(), nil
}

// mapUseCaseError converts application errors to gRPC status errors. Domain
// validation failures surface as InvalidArgument so callers can correct the
// request; everything else is masked as Internal.
func mapUseCaseError(err error) error {
	if service.IsValidationError(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// Compile-time assertion that FinanceEngineHandler implements FinanceEngineServer.
var _ FinanceEngineServer = (*FinanceEngineHandler)(nil)

// FinanceEngineHandler implements the gRPC FinanceEngineServer interface.
type FinanceEngineHandler struct {
	UnimplementedFinanceEngineServer
	eligibilityUC  *usecase.EvaluateEligibilityUseCase
	prepaymentUC   *usecase.QuotePrepaymentUseCase
	analyticsUC    *usecase.AnalyzeScheduleUseCase
	amortizationUC *usecase.ComputeAmortizationUseCase
}

// NewFinanceEngineHandler creates a new FinanceEngineHandler.
func NewFinanceEngineHandler(
	eligibilityUC *usecase.EvaluateEligibilityUseCase,
	prepaymentUC *usecase.QuotePrepaymentUseCase,
	analyticsUC *usecase.AnalyzeScheduleUseCase,
	amortizationUC *usecase.ComputeAmortizationUseCase,
) *FinanceEngineHandler {
	return &FinanceEngineHandler{
		eligibilityUC:  eligibilityUC,
		prepaymentUC:   prepaymentUC,
		analyticsUC:    analyticsUC,
		amortizationUC: amortizationUC,
	}
}

// Proto-aligned request/response message types.

// ApplicantMsg represents the proto Applicant message.
type ApplicantMsg struct {
	ApplicantID         string          `json:"applicant_id"`
	Age                 int             `json:"age"`
	AccountActive       bool            `json:"account_active"`
	KYCVerified         bool            `json:"kyc_verified"`
	CreditScore         int             `json:"credit_score"`
	MonthlyIncome       string          `json:"monthly_income"`
	EmploymentType      string          `json:"employment_type"`
	WorkExperienceYears int             `json:"work_experience_years"`
	ExistingEMI         string          `json:"existing_emi"`
	Documents           map[string]bool `json:"documents"`
	HasBankAccount      bool            `json:"has_bank_account"`
	IsExistingCustomer  bool            `json:"is_existing_customer"`
}

// EvaluateEligibilityRequest represents the proto EvaluateEligibilityRequest message.
type EvaluateEligibilityRequest struct {
	ApplicationID   string        `json:"application_id"`
	ProductID       string        `json:"product_id"`
	RequestedAmount string        `json:"requested_amount"`
	TenureMonths    int           `json:"tenure_months"`
	Applicant       *ApplicantMsg `json:"applicant"`
}

// EvaluateEligibilityResponse represents the proto EvaluateEligibilityResponse message.
type EvaluateEligibilityResponse struct {
	Result *dto.EligibilityResponse `json:"result"`
}

// QuotePrepaymentRequest represents the proto QuotePrepaymentRequest message.
type QuotePrepaymentRequest struct {
	LoanID         string `json:"loan_id"`
	PrepaymentType string `json:"prepayment_type"`
	Amount         string `json:"amount"`
	ReduceEMI      bool   `json:"reduce_emi"`
	AsOfDate       string `json:"as_of_date"`
}

// QuotePrepaymentResponse represents the proto QuotePrepaymentResponse message.
type QuotePrepaymentResponse struct {
	Quote *dto.PrepaymentResponse `json:"quote"`
}

// AnalyzeScheduleRequest represents the proto AnalyzeScheduleRequest message.
type AnalyzeScheduleRequest struct {
	LoanID   string `json:"loan_id"`
	AsOfDate string `json:"as_of_date"`
}

// AnalyzeScheduleResponse represents the proto AnalyzeScheduleResponse message.
type AnalyzeScheduleResponse struct {
	Analysis *dto.ScheduleAnalysisResponse `json:"analysis"`
}

// ComputeAmortizationRequest represents the proto ComputeAmortizationRequest message.
type ComputeAmortizationRequest struct {
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TenureMonths      int    `json:"tenure_months"`
	StartDate         string `json:"start_date"`
	IncludeSchedule   bool   `json:"include_schedule"`
}

// ComputeAmortizationResponse represents the proto ComputeAmortizationResponse message.
type ComputeAmortizationResponse struct {
	Amortization *dto.AmortizationResponse `json:"amortization"`
}

// parseDate parses an RFC 3339 date-time, falling back to plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// EvaluateEligibility handles the gRPC request to evaluate loan eligibility.
func (h *FinanceEngineHandler) EvaluateEligibility(ctx context.Context, req *EvaluateEligibilityRequest) (*EvaluateEligibilityResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	if req.Applicant == nil {
		return nil, status.Error(codes.InvalidArgument, "applicant is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.RequestedAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid requested_amount: %v", err)
	}

	income, err := decimal.NewFromString(req.Applicant.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_income: %v", err)
	}

	existingEMI := decimal.Zero
	if req.Applicant.ExistingEMI != "" {
		existingEMI, err = decimal.NewFromString(req.Applicant.ExistingEMI)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid existing_emi: %v", err)
		}
	}

	dtoReq := dto.EvaluateEligibilityRequest{
		TenantID:      tenantID,
		ApplicationID: req.ApplicationID,
		ProductID:     req.ProductID,
		Applicant: dto.ApplicantData{
			ApplicantID:         req.Applicant.ApplicantID,
			Age:                 req.Applicant.Age,
			AccountActive:       req.Applicant.AccountActive,
			KYCVerified:         req.Applicant.KYCVerified,
			CreditScore:         req.Applicant.CreditScore,
			MonthlyIncome:       income,
			EmploymentType:      req.Applicant.EmploymentType,
			WorkExperienceYears: req.Applicant.WorkExperienceYears,
			ExistingEMI:         existingEMI,
			Documents:           req.Applicant.Documents,
			HasBankAccount:      req.Applicant.HasBankAccount,
			IsExistingCustomer:  req.Applicant.IsExistingCustomer,
		},
		RequestedAmount: amount,
		TenureMonths:    req.TenureMonths,
	}

	resp, err := h.eligibilityUC.Execute(ctx, dtoReq)
	if err != nil {
		return nil, mapUseCaseError(err)
	}

	return &EvaluateEligibilityResponse{Result: &resp}, nil
}

// QuotePrepayment handles the gRPC request to simulate a prepayment.
func (h *FinanceEngineHandler) QuotePrepayment(ctx context.Context, req *QuotePrepaymentRequest) (*QuotePrepaymentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleCustomer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}
	if req.PrepaymentType == "" {
		return nil, status.Error(codes.InvalidArgument, "prepayment_type is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount := decimal.Zero
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
		}
	}

	asOf := time.Now().UTC()
	if req.AsOfDate != "" {
		asOf, err = parseDate(req.AsOfDate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid as_of_date: %v", err)
		}
	}

	resp, err := h.prepaymentUC.Execute(ctx, dto.QuotePrepaymentRequest{
		TenantID:       tenantID,
		LoanID:         req.LoanID,
		PrepaymentType: req.PrepaymentType,
		Amount:         amount,
		ReduceEMI:      req.ReduceEMI,
		AsOfDate:       asOf,
	})
	if err != nil {
		return nil, mapUseCaseError(err)
	}

	return &QuotePrepaymentResponse{Quote: &resp}, nil
}

// AnalyzeSchedule handles the gRPC request to analyze a repayment schedule.
func (h *FinanceEngineHandler) AnalyzeSchedule(ctx context.Context, req *AnalyzeScheduleRequest) (*AnalyzeScheduleResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAuditor, auth.RoleCustomer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.LoanID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_id is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if req.AsOfDate != "" {
		asOf, err = parseDate(req.AsOfDate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid as_of_date: %v", err)
		}
	}

	resp, err := h.analyticsUC.Execute(ctx, dto.AnalyzeScheduleRequest{
		TenantID: tenantID,
		LoanID:   req.LoanID,
		AsOfDate: asOf,
	})
	if err != nil {
		return nil, mapUseCaseError(err)
	}

	return &AnalyzeScheduleResponse{Analysis: &resp}, nil
}

// ComputeAmortization handles the gRPC request to compute a standalone amortization.
func (h *FinanceEngineHandler) ComputeAmortization(ctx context.Context, req *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAuditor, auth.RoleCustomer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal: %v", err)
	}

	rate, err := decimal.NewFromString(req.AnnualRatePercent)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_rate_percent: %v", err)
	}

	if req.IncludeSchedule && req.StartDate == "" {
		return nil, status.Error(codes.InvalidArgument, "start_date is required when include_schedule is set")
	}

	var start time.Time
	if req.StartDate != "" {
		start, err = parseDate(req.StartDate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid start_date: %v", err)
		}
	}

	resp, err := h.amortizationUC.Execute(ctx, dto.ComputeAmortizationRequest{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenureMonths:      req.TenureMonths,
		StartDate:         start,
		IncludeSchedule:   req.IncludeSchedule,
	})
	if err != nil {
		return nil, mapUseCaseError(err)
	}

	return &ComputeAmortizationResponse{Amortization: &resp}, nil
}
