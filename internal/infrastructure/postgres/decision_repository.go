package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/valueobject"
	pkgpostgres "github.com/sindhuatluri/LOC/pkg/postgres"
)

// DecisionRepository implements port.DecisionRepository using PostgreSQL.
//
// Save writes the decision row and the aggregate's domain events into the
// outbox within one transaction: a stored decision and its events are
// inseparable, the relay publishes them later.
type DecisionRepository struct {
	pool *pgxpool.Pool
}

// NewDecisionRepository creates a new PostgreSQL-backed decision repository.
func NewDecisionRepository(pool *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{pool: pool}
}

const decisionColumns = `
	id, applicant_id,
	annual_income, self_reported_debt, self_reported_expenses, requested_amount,
	age, province, employment_status, months_employed,
	credit_score, total_credit_limit, credit_utilization,
	num_open_accounts, num_credit_inquiries, payment_history, monthly_expenses,
	estimated_debt, dti_ratio,
	approval_status, credit_limit, interest_rate, reason,
	created_at`

// Save persists the decision record and stages its events in the outbox.
func (r *DecisionRepository) Save(ctx context.Context, record *model.DecisionRecord) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := insertDecision(ctx, tx, record); err != nil {
			return err
		}
		for _, evt := range record.ClearEvents() {
			if err := InsertOutboxEntry(ctx, tx, evt); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertDecision(ctx context.Context, q pkgpostgres.Querier, record *model.DecisionRecord) error {
	query := `
		INSERT INTO decisions (` + decisionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	fv := record.Features()
	decision := record.Decision()

	_, err := q.Exec(ctx, query,
		record.ID(),
		record.ApplicantID(),
		fv.AnnualIncome,
		fv.SelfReportedDebt,
		fv.SelfReportedExpenses,
		fv.RequestedAmount,
		fv.Age,
		fv.Province.String(),
		fv.EmploymentStatus.String(),
		fv.MonthsEmployed,
		fv.CreditScore,
		fv.TotalCreditLimit,
		fv.CreditUtilization,
		fv.NumOpenAccounts,
		fv.NumCreditInquiries,
		fv.PaymentHistory.String(),
		fv.MonthlyExpenses,
		fv.EstimatedDebt,
		fv.DTIRatio,
		decision.ApprovalStatus(),
		decision.CreditLimit(),
		decision.InterestRate(),
		decision.Reason(),
		record.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save decision: %w", err)
	}
	return nil
}

// FindByID retrieves a decision record by its unique identifier.
func (r *DecisionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DecisionRecord, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE id = $1`

	record, err := scanDecision(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDecisionNotFound
		}
		return nil, err
	}
	return record, nil
}

// FindByApplicantID retrieves decisions for an applicant, most recent first.
func (r *DecisionRepository) FindByApplicantID(ctx context.Context, applicantID string, limit, offset int) ([]*model.DecisionRecord, error) {
	query := `SELECT ` + decisionColumns + `
		FROM decisions
		WHERE applicant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, applicantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var records []*model.DecisionRecord
	for rows.Next() {
		record, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decisions: %w", err)
	}

	return records, nil
}

// scanDecision rebuilds a DecisionRecord from one row. pgx.Rows satisfies
// pgx.Row, so the same scan serves single and multi row queries.
func scanDecision(row pgx.Row) (*model.DecisionRecord, error) {
	var (
		id             uuid.UUID
		applicantID    string
		provinceStr    string
		employmentStr  string
		paymentStr     string
		approvalStatus bool
		creditLimit    float64
		interestRate   float64
		reason         string
		createdAt      time.Time
	)
	fv := model.FeatureVector{}

	err := row.Scan(
		&id, &applicantID,
		&fv.AnnualIncome, &fv.SelfReportedDebt, &fv.SelfReportedExpenses, &fv.RequestedAmount,
		&fv.Age, &provinceStr, &employmentStr, &fv.MonthsEmployed,
		&fv.CreditScore, &fv.TotalCreditLimit, &fv.CreditUtilization,
		&fv.NumOpenAccounts, &fv.NumCreditInquiries, &paymentStr, &fv.MonthlyExpenses,
		&fv.EstimatedDebt, &fv.DTIRatio,
		&approvalStatus, &creditLimit, &interestRate, &reason,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan decision: %w", err)
	}

	if fv.Province, err = valueobject.ProvinceFromString(provinceStr); err != nil {
		return nil, fmt.Errorf("failed to parse province: %w", err)
	}
	if fv.EmploymentStatus, err = valueobject.EmploymentStatusFromString(employmentStr); err != nil {
		return nil, fmt.Errorf("failed to parse employment status: %w", err)
	}
	if fv.PaymentHistory, err = valueobject.PaymentHistoryFromString(paymentStr); err != nil {
		return nil, fmt.Errorf("failed to parse payment history: %w", err)
	}

	var decision model.Decision
	if approvalStatus {
		decision = model.NewApprovedDecision(creditLimit, interestRate)
	} else {
		decision = model.NewDeniedDecision(reason)
	}

	return model.ReconstructDecisionRecord(id, applicantID, fv, decision, createdAt), nil
}
