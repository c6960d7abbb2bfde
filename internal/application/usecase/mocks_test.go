package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/event"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/port"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockProductRepository struct {
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Product, error)
}

func (m *mockProductRepository) Save(_ context.Context, _ model.Product) error { return nil }

func (m *mockProductRepository) FindByID(ctx context.Context, tenantID, id string) (model.Product, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Product{}, fmt.Errorf("product not found")
}

func (m *mockProductRepository) FindActive(_ context.Context, _ string) ([]model.Product, error) {
	return nil, nil
}

type mockLoanRepository struct {
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Loan, error)
}

func (m *mockLoanRepository) Save(_ context.Context, _ model.Loan) error { return nil }

func (m *mockLoanRepository) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Loan{}, fmt.Errorf("loan not found")
}

type mockScheduleRepository struct {
	findByLoanIDFunc func(ctx context.Context, tenantID, loanID string) ([]model.EMIScheduleEntry, error)
}

func (m *mockScheduleRepository) SaveSchedule(_ context.Context, _, _ string, _ []model.EMIScheduleEntry) error {
	return nil
}

func (m *mockScheduleRepository) FindByLoanID(ctx context.Context, tenantID, loanID string) ([]model.EMIScheduleEntry, error) {
	if m.findByLoanIDFunc != nil {
		return m.findByLoanIDFunc(ctx, tenantID, loanID)
	}
	return nil, fmt.Errorf("schedule not found")
}

type mockDecisionRepository struct {
	saveFunc     func(ctx context.Context, d port.DecisionRecord) error
	savedRecords []port.DecisionRecord
}

func (m *mockDecisionRepository) Save(ctx context.Context, d port.DecisionRecord) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, d)
	}
	m.savedRecords = append(m.savedRecords, d)
	return nil
}

func (m *mockDecisionRepository) FindByApplicationID(_ context.Context, _, _ string) (port.DecisionRecord, error) {
	return port.DecisionRecord{}, fmt.Errorf("decision not found")
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCreditBureauClient struct {
	getCreditScoreFunc func(ctx context.Context, applicantID string) (int, error)
}

func (m *mockCreditBureauClient) GetCreditScore(ctx context.Context, applicantID string) (int, error) {
	if m.getCreditScoreFunc != nil {
		return m.getCreditScoreFunc(ctx, applicantID)
	}
	return 750, nil
}

type mockFraudDetector struct {
	checkFunc func(ctx context.Context, tenantID, applicantID string) (valueobject.FraudCheck, error)
}

func (m *mockFraudDetector) CheckApplicant(ctx context.Context, tenantID, applicantID string) (valueobject.FraudCheck, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, tenantID, applicantID)
	}
	return valueobject.NewFraudCheck(decimal.NewFromFloat(0.1), false, nil)
}

type mockQuoteCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{entries: make(map[string][]byte)}
}

func (m *mockQuoteCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.entries[key]
	return payload, ok, nil
}

func (m *mockQuoteCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

// --- Shared fixtures ---

func personalLoanProduct() model.Product {
	return model.Product{
		ID:               "product-001",
		Name:             "Personal Loan",
		Category:         "PERSONAL",
		Active:           true,
		MinAmount:        decimal.NewFromInt(50_000),
		MaxAmount:        decimal.NewFromInt(2_000_000),
		MinTenure:        6,
		MaxTenure:        60,
		BaseInterestRate: decimal.NewFromFloat(12.5),
		MinInterestRate:  decimal.NewFromInt(8),
		MaxInterestRate:  decimal.NewFromInt(24),
		Criteria: model.EligibilityCriteria{
			MinCreditScore:   650,
			MinMonthlyIncome: decimal.NewFromInt(25_000),
			EmploymentTypes:  []string{model.EmploymentSalaried, model.EmploymentSelfEmployed},
			MaxDTIRatio:      decimal.NewFromInt(60),
		},
		RequiredDocuments:      []string{"PAN", "AADHAAR"},
		AllowPartialPrepayment: true,
		MinPartialPrepayment:   decimal.NewFromInt(10_000),
	}
}

func strongApplicant() model.Applicant {
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
