package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/port"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// AnalyzeScheduleUseCase produces the full schedule health report: summary,
// payment reliability and the forward projection.
type AnalyzeScheduleUseCase struct {
	scheduleRepo port.ScheduleRepository
	publisher    port.EventPublisher
	analytics    *service.ScheduleAnalytics
}

// NewAnalyzeScheduleUseCase wires dependencies.
func NewAnalyzeScheduleUseCase(
	scheduleRepo port.ScheduleRepository,
	publisher port.EventPublisher,
	analytics *service.ScheduleAnalytics,
) *AnalyzeScheduleUseCase {
	return &AnalyzeScheduleUseCase{
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
		analytics:    analytics,
	}
}

// Execute analyzes the loan's schedule as of the request date.
func (uc *AnalyzeScheduleUseCase) Execute(
	ctx context.Context,
	req dto.AnalyzeScheduleRequest,
) (dto.ScheduleAnalysisResponse, error) {
	entries, err := uc.scheduleRepo.FindByLoanID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.ScheduleAnalysisResponse{}, fmt.Errorf("find schedule: %w", err)
	}

	summary := uc.analytics.Summarize(entries, req.AsOfDate)

	var paid, pending, overdue []model.EMIScheduleEntry
	for i := range entries {
		e := entries[i]
		switch {
		case e.Status.Equal(valueobject.EMIStatusPaid):
			paid = append(paid, e)
		default:
			pending = append(pending, e)
			if e.Status.Equal(valueobject.EMIStatusOverdue) || e.DueDate.Before(req.AsOfDate) {
				overdue = append(overdue, e)
			}
		}
	}

	reliability := uc.analytics.ScoreReliability(paid, overdue)
	projection := uc.analytics.Project(pending, reliability)

	evt := event.NewScheduleAnalyzed(
		req.LoanID, req.TenantID,
		reliability.ReliabilityScore, summary.OverdueCount,
		decimal.NewFromInt(int64(summary.CompletionPercent)),
		riskOf(projection),
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.ScheduleAnalysisResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.ScheduleAnalysisResponse{
		LoanID:      req.LoanID,
		AsOfDate:    req.AsOfDate,
		Summary:     toSummaryResponse(summary),
		Reliability: dto.ReliabilityResponse{
			OnTimePercent:    reliability.OnTimePercent,
			AverageDelayDays: reliability.AverageDelayDays,
			ReliabilityScore: reliability.ReliabilityScore,
		},
		Projection: toProjectionResponse(projection),
	}, nil
}

// riskOf reads the projection's risk tier; an empty projection is low risk.
func riskOf(p service.ScheduleProjection) string {
	if len(p.Entries) == 0 {
		return valueobject.RiskLevelLow.String()
	}
	return p.Entries[0].Risk.String()
}

func toSummaryResponse(s service.ScheduleSummary) dto.ScheduleSummaryResponse {
	resp := dto.ScheduleSummaryResponse{
		TotalEntries:      s.TotalEntries,
		PaidCount:         s.PaidCount,
		PendingCount:      s.PendingCount,
		OverdueCount:      s.OverdueCount,
		CompletionPercent: s.CompletionPercent,
		TotalPaid:         s.TotalPaid,
		TotalPending:      s.TotalPending,
		TotalOverdue:      s.TotalOverdue,
	}
	if s.NextDue != nil {
		next := toScheduleEntryResponse(*s.NextDue)
		resp.NextDue = &next
	}
	if s.LastPaid != nil {
		last := toScheduleEntryResponse(*s.LastPaid)
		resp.LastPaid = &last
	}
	return resp
}

func toScheduleEntryResponse(e model.EMIScheduleEntry) dto.ScheduleEntryResponse {
	return dto.ScheduleEntryResponse{
		EMINumber:            e.EMINumber,
		DueDate:              e.DueDate,
		Amount:               e.Amount,
		PrincipalAmount:      e.PrincipalAmount,
		InterestAmount:       e.InterestAmount,
		OutstandingPrincipal: e.OutstandingPrincipal,
		Status:               e.Status.String(),
		PaidDate:             e.PaidDate,
		PaidAmount:           e.PaidAmount,
		LateFee:              e.LateFee,
	}
}

func toProjectionResponse(p service.ScheduleProjection) dto.ProjectionResponse {
	resp := dto.ProjectionResponse{
		ScheduledCompletion: p.ScheduledCompletion,
		ProjectedCompletion: p.ProjectedCompletion,
		CompletionDelayDays: p.CompletionDelayDays,
	}
	for _, e := range p.Entries {
		resp.Entries = append(resp.Entries, dto.ProjectedEntryResponse{
			EMINumber:            e.EMINumber,
			DueDate:              e.DueDate,
			ProjectedPaymentDate: e.ProjectedPaymentDate,
			Amount:               e.Amount,
			Risk:                 e.Risk.String(),
		})
	}
	return resp
}
