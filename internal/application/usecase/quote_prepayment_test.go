package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/application/usecase"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
)

// seasonedLoan returns a 36-month loan with the first 12 EMIs paid on time.
func seasonedLoan(t *testing.T) (model.Loan, []model.EMIScheduleEntry) {
	t.Helper()

	terms := model.LoanTerms{
		Principal:         decimal.NewFromInt(500_000),
		AnnualRatePercent: decimal.NewFromFloat(12.5),
		TenureMonths:      36,
	}
	emi, err := service.ComputeEMI(terms.Principal, terms.TenureMonths, terms.AnnualRatePercent)
	require.NoError(t, err)

	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	entries := model.GenerateEMISchedule(terms, emi, start)
	for i := 0; i < 12; i++ {
		paid, err := entries[i].MarkPaid(entries[i].DueDate, entries[i].Amount, decimal.Zero)
		require.NoError(t, err)
		entries[i] = paid
	}

	loan := model.Loan{
		ID:          "loan-001",
		ProductID:   "product-001",
		Terms:       terms,
		EMIAmount:   emi,
		DisbursedAt: start.AddDate(0, -1, 0),
	}
	return loan, entries
}

func newPrepaymentUseCase(
	loanRepo *mockLoanRepository,
	scheduleRepo *mockScheduleRepository,
	productRepo *mockProductRepository,
	publisher *mockEventPublisher,
) *usecase.QuotePrepaymentUseCase {
	calc := service.NewPrepaymentCalculator(service.DefaultPolicy())
	return usecase.NewQuotePrepaymentUseCase(loanRepo, scheduleRepo, productRepo, publisher, calc)
}

func TestQuotePrepayment_Execute(t *testing.T) {
	loan, entries := seasonedLoan(t)

	loanRepo := func() *mockLoanRepository {
		return &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
	}
	scheduleRepo := func() *mockScheduleRepository {
		return &mockScheduleRepository{
			findByLoanIDFunc: func(_ context.Context, _, _ string) ([]model.EMIScheduleEntry, error) {
				return entries, nil
			},
		}
	}
	productRepo := func() *mockProductRepository {
		return &mockProductRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Product, error) {
				return personalLoanProduct(), nil
			},
		}
	}

	asOf := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("quotes a full foreclosure and publishes the event", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), publisher)

		resp, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "FULL",
			AsOfDate:       asOf,
		})

		require.NoError(t, err)
		assert.Equal(t, "FULL", resp.Details.Type)
		require.NotNil(t, resp.LoanClosure)
		assert.Nil(t, resp.RevisedSchedule)
		assert.Equal(t, asOf, resp.LoanClosure.ClosureDate)
		assert.True(t, resp.LoanClosure.TotalPayableAmount.GreaterThan(resp.Details.OutstandingPrincipal),
			"closure amount includes foreclosure charges")

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "finance.prepayment.quoted", publisher.publishedEvents[0].EventType())
	})

	t.Run("quotes a partial prepayment with tenure reduction by default", func(t *testing.T) {
		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "PARTIAL",
			Amount:         decimal.NewFromInt(100_000),
			AsOfDate:       asOf,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.RevisedSchedule)
		assert.Nil(t, resp.LoanClosure)
		assert.True(t, resp.RevisedSchedule.TenureReduction)
		assert.Less(t, resp.RevisedSchedule.NewTenureMonths, resp.Current.PendingEMIs)
		assert.True(t, resp.RevisedSchedule.NewEMIAmount.Equal(loan.EMIAmount))
	})

	t.Run("quotes a partial prepayment with EMI reduction when requested", func(t *testing.T) {
		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "PARTIAL",
			Amount:         decimal.NewFromInt(100_000),
			ReduceEMI:      true,
			AsOfDate:       asOf,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.RevisedSchedule)
		assert.False(t, resp.RevisedSchedule.TenureReduction)
		assert.Equal(t, resp.Current.PendingEMIs, resp.RevisedSchedule.NewTenureMonths)
		assert.True(t, resp.RevisedSchedule.NewEMIAmount.LessThan(loan.EMIAmount))
	})

	t.Run("rejects an unknown prepayment type", func(t *testing.T) {
		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "SOMETIMES",
			AsOfDate:       asOf,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse prepayment type")
	})

	t.Run("surfaces a validation error for an undersized partial amount", func(t *testing.T) {
		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "PARTIAL",
			Amount:         decimal.NewFromInt(5_000), // below the product minimum
			AsOfDate:       asOf,
		})

		require.Error(t, err)
		assert.True(t, service.IsValidationError(err))
	})

	t.Run("fails when the loan is unknown", func(t *testing.T) {
		uc := newPrepaymentUseCase(&mockLoanRepository{}, scheduleRepo(), productRepo(), &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "missing",
			PrepaymentType: "FULL",
			AsOfDate:       asOf,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find loan")
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}

		uc := newPrepaymentUseCase(loanRepo(), scheduleRepo(), productRepo(), publisher)
		_, err := uc.Execute(context.Background(), dto.QuotePrepaymentRequest{
			TenantID:       "tenant-001",
			LoanID:         "loan-001",
			PrepaymentType: "FULL",
			AsOfDate:       asOf,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
