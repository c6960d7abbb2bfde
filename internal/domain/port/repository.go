package port

import (
	"context"
	"time"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ProductRepository retrieves loan product definitions.
type ProductRepository interface {
	Save(ctx context.Context, product model.Product) error
	FindByID(ctx context.Context, tenantID, id string) (model.Product, error)
	FindActive(ctx context.Context, tenantID string) ([]model.Product, error)
}

// LoanRepository persists and retrieves disbursed loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, tenantID, id string) (model.Loan, error)
}

// ScheduleRepository persists and retrieves repayment schedules.
type ScheduleRepository interface {
	SaveSchedule(ctx context.Context, tenantID, loanID string, entries []model.EMIScheduleEntry) error
	FindByLoanID(ctx context.Context, tenantID, loanID string) ([]model.EMIScheduleEntry, error)
}

// DecisionRepository stores eligibility decision snapshots for audit.
type DecisionRepository interface {
	Save(ctx context.Context, d DecisionRecord) error
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) (DecisionRecord, error)
}

// DecisionRecord is the persisted snapshot of an eligibility evaluation.
type DecisionRecord struct {
	ID            string
	TenantID      string
	ApplicationID string
	ProductID     string
	Decision      valueobject.Decision
	Score         int
	Reasons       []string
	Conditions    []string
	EvaluatedAt   time.Time
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditBureauClient fetches credit scores from an external bureau.
type CreditBureauClient interface {
	GetCreditScore(ctx context.Context, applicantID string) (int, error)
}

// FraudDetector runs a fraud screen for an applicant.
type FraudDetector interface {
	CheckApplicant(ctx context.Context, tenantID, applicantID string) (valueobject.FraudCheck, error)
}

// QuoteCache memoizes serialized evaluation results keyed by a request
// fingerprint. A miss is (nil, false, nil).
type QuoteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
