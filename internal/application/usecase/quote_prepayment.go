package usecase

import (
	"context"
	"fmt"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/port"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// QuotePrepaymentUseCase loads a loan with its schedule and product policy,
// runs the prepayment calculator and publishes the quote.
type QuotePrepaymentUseCase struct {
	loanRepo     port.LoanRepository
	scheduleRepo port.ScheduleRepository
	productRepo  port.ProductRepository
	publisher    port.EventPublisher
	calculator   *service.PrepaymentCalculator
}

// NewQuotePrepaymentUseCase wires dependencies.
func NewQuotePrepaymentUseCase(
	loanRepo port.LoanRepository,
	scheduleRepo port.ScheduleRepository,
	productRepo port.ProductRepository,
	publisher port.EventPublisher,
	calculator *service.PrepaymentCalculator,
) *QuotePrepaymentUseCase {
	return &QuotePrepaymentUseCase{
		loanRepo:     loanRepo,
		scheduleRepo: scheduleRepo,
		productRepo:  productRepo,
		publisher:    publisher,
		calculator:   calculator,
	}
}

// Execute quotes the requested prepayment against the loan's live schedule.
func (uc *QuotePrepaymentUseCase) Execute(
	ctx context.Context,
	req dto.QuotePrepaymentRequest,
) (dto.PrepaymentResponse, error) {
	prepayType, err := valueobject.NewPrepaymentType(req.PrepaymentType)
	if err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("parse prepayment type: %w", err)
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	product, err := uc.productRepo.FindByID(ctx, req.TenantID, loan.ProductID)
	if err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("find product: %w", err)
	}

	entries, err := uc.scheduleRepo.FindByLoanID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("find schedule: %w", err)
	}

	input := service.PrepaymentInput{
		Type:            prepayType,
		Date:            req.AsOfDate,
		Amount:          req.Amount,
		TenureReduction: !req.ReduceEMI,
	}

	result, err := uc.calculator.Calculate(loan, product, entries, input)
	if err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("calculate prepayment: %w", err)
	}

	evt := event.NewPrepaymentQuoted(
		req.LoanID, req.TenantID,
		result.Details.Type.String(),
		result.Details.Amount, result.Details.Charges,
		result.Savings.TotalSavings,
		result.BreakEven.Recommendation, req.AsOfDate,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.PrepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPrepaymentResponse(req.LoanID, result), nil
}

func toPrepaymentResponse(loanID string, r service.PrepaymentResult) dto.PrepaymentResponse {
	resp := dto.PrepaymentResponse{
		LoanID: loanID,
		Details: dto.PrepaymentDetailsResponse{
			Type:                 r.Details.Type.String(),
			Date:                 r.Details.Date,
			Amount:               r.Details.Amount,
			Charges:              r.Details.Charges,
			NetAmount:            r.Details.NetAmount,
			OutstandingPrincipal: r.Details.OutstandingPrincipal,
		},
		Current: dto.CurrentScenarioResponse{
			EMIAmount:            r.Current.EMIAmount,
			PendingEMIs:          r.Current.PendingEMIs,
			OutstandingPrincipal: r.Current.OutstandingPrincipal,
			TotalPayable:         r.Current.TotalPayable,
			TotalInterest:        r.Current.TotalInterest,
		},
		Savings: dto.SavingsResponse{
			InterestSavings:   r.Savings.InterestSavings,
			TotalSavings:      r.Savings.TotalSavings,
			PercentageSavings: r.Savings.PercentageSavings,
		},
		BreakEven: dto.BreakEvenResponse{
			Months:         r.BreakEven.Months,
			Recommendation: r.BreakEven.Recommendation,
			Reasoning:      r.BreakEven.Reasoning,
		},
	}
	if r.RevisedSchedule != nil {
		resp.RevisedSchedule = &dto.RevisedScheduleResponse{
			TenureReduction: r.RevisedSchedule.TenureReduction,
			NewOutstanding:  r.RevisedSchedule.NewOutstanding,
			NewTenureMonths: r.RevisedSchedule.NewTenureMonths,
			NewEMIAmount:    r.RevisedSchedule.NewEMIAmount,
			MonthsReduced:   r.RevisedSchedule.MonthsReduced,
			EMIReduced:      r.RevisedSchedule.EMIReduced,
		}
	}
	if r.LoanClosure != nil {
		resp.LoanClosure = &dto.LoanClosureResponse{
			TotalPayableAmount: r.LoanClosure.TotalPayableAmount,
			ClosureDate:        r.LoanClosure.ClosureDate,
		}
	}
	return resp
}
