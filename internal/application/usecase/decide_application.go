package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/port"
	"github.com/sindhuatluri/LOC/internal/domain/service"
)

// DecideApplication is the use case for deciding a line-of-credit
// application.
type DecideApplication struct {
	repo    port.DecisionRepository
	engine  *service.DecisionEngine
	deriver *service.FeatureDeriver
	logger  *slog.Logger
}

// NewDecideApplication creates a new DecideApplication use case.
func NewDecideApplication(
	repo port.DecisionRepository,
	engine *service.DecisionEngine,
	deriver *service.FeatureDeriver,
	logger *slog.Logger,
) *DecideApplication {
	return &DecideApplication{
		repo:    repo,
		engine:  engine,
		deriver: deriver,
		logger:  logger,
	}
}

// Execute validates the request, runs the decision engine, and records the
// outcome. Persistence is best effort: the decision is final once the
// engine returns, so a storage failure is logged and the decision is still
// returned to the caller.
func (uc *DecideApplication) Execute(ctx context.Context, req dto.DecideApplicationRequest) (dto.DecisionResponse, error) {
	// 1. Validate and construct the application.
	app, err := model.NewApplication(model.ApplicationParams{
		ApplicantID:          req.ApplicantID,
		AnnualIncome:         req.AnnualIncome,
		SelfReportedDebt:     req.SelfReportedDebt,
		SelfReportedExpenses: req.SelfReportedExpenses,
		RequestedAmount:      req.RequestedAmount,
		Age:                  req.Age,
		Province:             req.Province,
		EmploymentStatus:     req.EmploymentStatus,
		MonthsEmployed:       req.MonthsEmployed,
		CreditScore:          req.CreditScore,
		TotalCreditLimit:     req.TotalCreditLimit,
		CreditUtilization:    req.CreditUtilization,
		NumOpenAccounts:      req.NumOpenAccounts,
		NumCreditInquiries:   req.NumCreditInquiries,
		PaymentHistory:       req.PaymentHistory,
		MonthlyExpenses:      req.MonthlyExpenses,
	})
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("failed to validate application: %w", err)
	}

	// 2. Run the decision engine.
	decision, err := uc.engine.Decide(app)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("failed to decide application: %w", err)
	}

	// 3. Snapshot the scored features and build the decision record.
	features := model.NewFeatureVector(app, uc.deriver.Derive(app))
	record, err := model.NewDecisionRecord(app.ApplicantID(), features, decision)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("failed to create decision record: %w", err)
	}

	// 4. Persist the record and its outbox events.
	if saveErr := uc.repo.Save(ctx, record); saveErr != nil {
		uc.logger.Warn("failed to persist decision",
			"decision_id", record.ID(),
			"applicant_id", record.ApplicantID(),
			"error", saveErr,
		)
	}

	return dto.FromRecord(record), nil
}
