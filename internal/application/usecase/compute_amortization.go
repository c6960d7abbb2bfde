package usecase

import (
	"context"
	"fmt"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
)

// ComputeAmortizationUseCase runs a standalone amortization over
// caller-supplied terms. Pure; no collaborators.
type ComputeAmortizationUseCase struct{}

// NewComputeAmortizationUseCase returns the use case.
func NewComputeAmortizationUseCase() *ComputeAmortizationUseCase {
	return &ComputeAmortizationUseCase{}
}

// Execute computes the EMI and totals, and optionally the full schedule when
// a start date is supplied.
func (uc *ComputeAmortizationUseCase) Execute(
	_ context.Context,
	req dto.ComputeAmortizationRequest,
) (dto.AmortizationResponse, error) {
	terms := model.LoanTerms{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TenureMonths:      req.TenureMonths,
	}

	result, err := service.ComputeAmortization(terms)
	if err != nil {
		return dto.AmortizationResponse{}, fmt.Errorf("compute amortization: %w", err)
	}

	resp := dto.AmortizationResponse{
		EMIAmount:     result.EMIAmount,
		TotalPayment:  result.TotalPayment,
		TotalInterest: result.TotalInterest,
	}

	if req.IncludeSchedule {
		if req.StartDate.IsZero() {
			return dto.AmortizationResponse{}, fmt.Errorf("compute amortization: start date is required for a schedule")
		}
		for _, e := range model.GenerateEMISchedule(terms, result.EMIAmount, req.StartDate) {
			resp.Schedule = append(resp.Schedule, toScheduleEntryResponse(e))
		}
	}

	return resp, nil
}
