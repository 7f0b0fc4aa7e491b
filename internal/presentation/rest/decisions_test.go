package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/application/usecase"
	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/service"
)

// --- Mock implementations ---

type mockDecisionRepo struct {
	saveErr               error
	findByIDFunc          func(ctx context.Context, id uuid.UUID) (*model.DecisionRecord, error)
	findByApplicantIDFunc func(ctx context.Context, applicantID string, limit, offset int) ([]*model.DecisionRecord, error)
}

func (m *mockDecisionRepo) Save(_ context.Context, _ *model.DecisionRecord) error {
	return m.saveErr
}

func (m *mockDecisionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DecisionRecord, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("decision %s: %w", id, model.ErrDecisionNotFound)
}

func (m *mockDecisionRepo) FindByApplicantID(ctx context.Context, applicantID string, limit, offset int) ([]*model.DecisionRecord, error) {
	if m.findByApplicantIDFunc != nil {
		return m.findByApplicantIDFunc(ctx, applicantID, limit, offset)
	}
	return nil, nil
}

type stubScorer struct {
	err      error
	limit    float64
	rate     float64
	approved bool
}

func (s stubScorer) ScoreApproval(_ model.FeatureVector) (bool, error) { return s.approved, s.err }
func (s stubScorer) ScoreLimit(_ model.FeatureVector) (float64, error) { return s.limit, s.err }
func (s stubScorer) ScoreRate(_ model.FeatureVector) (float64, error)  { return s.rate, s.err }

// --- Helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestMux(repo *mockDecisionRepo, scorer stubScorer) *http.ServeMux {
	deriver := service.NewFeatureDeriver()
	engine := service.NewDecisionEngine(
		deriver,
		service.NewScoringGateway(scorer, scorer, scorer),
		service.NewDenialExplainer(),
	)
	logger := testLogger()

	handler := NewDecisionHandler(
		usecase.NewDecideApplication(repo, engine, deriver, logger),
		usecase.NewGetDecision(repo),
		usecase.NewListDecisions(repo),
		logger,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func validBody() string {
	return `{
		"applicant_id": "applicant-0001",
		"annual_income": 200000,
		"self_reported_debt": 1000,
		"self_reported_expenses": 2000,
		"requested_amount": 10000,
		"age": 35,
		"province": "ON",
		"employment_status": "Full-time",
		"months_employed": 24,
		"credit_score": 700,
		"total_credit_limit": 15000,
		"credit_utilization": 30,
		"num_open_accounts": 3,
		"num_credit_inquiries": 1,
		"payment_history": "On Time",
		"monthly_expenses": 2500
	}`
}

func postDecision(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decisions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func storedRecord(t *testing.T) *model.DecisionRecord {
	t.Helper()

	app, err := model.NewApplication(model.ApplicationParams{
		ApplicantID:          "applicant-0001",
		AnnualIncome:         200000,
		SelfReportedDebt:     1000,
		SelfReportedExpenses: 2000,
		RequestedAmount:      10000,
		Age:                  35,
		Province:             "ON",
		EmploymentStatus:     "Full-time",
		MonthsEmployed:       24,
		CreditScore:          700,
		TotalCreditLimit:     15000,
		CreditUtilization:    30,
		NumOpenAccounts:      3,
		NumCreditInquiries:   1,
		PaymentHistory:       "On Time",
		MonthlyExpenses:      2500,
	})
	require.NoError(t, err)

	features := model.NewFeatureVector(app, service.NewFeatureDeriver().Derive(app))
	return model.ReconstructDecisionRecord(
		uuid.New(), app.ApplicantID(), features,
		model.NewApprovedDecision(7500, 7.5), time.Now().UTC(),
	)
}

// --- Tests ---

func TestDecide(t *testing.T) {
	t.Run("approves a valid application", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{approved: true, limit: 7500, rate: 7.5})

		rec := postDecision(t, mux, validBody())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp dto.DecisionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.ApprovalStatus)
		assert.Equal(t, 7500.0, resp.CreditLimit)
		assert.Equal(t, 7.5, resp.InterestRate)
		assert.Empty(t, resp.Reason)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "applicant-0001", resp.ApplicantID)
	})

	t.Run("denies with reason and zeroed terms", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{approved: false})

		body := strings.Replace(validBody(), `"credit_score": 700`, `"credit_score": 640`, 1)
		rec := postDecision(t, mux, body)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DecisionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.ApprovalStatus)
		assert.Equal(t, 0.0, resp.CreditLimit)
		assert.Equal(t, 0.0, resp.InterestRate)
		assert.Equal(t, service.ReasonLowCreditScore, resp.Reason)
	})

	t.Run("invalid input reports field details", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{approved: true})

		body := strings.Replace(validBody(), `"age": 35`, `"age": 17`, 1)
		rec := postDecision(t, mux, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid input data", resp.Error)
		assert.Contains(t, resp.Details, "age")
	})

	t.Run("empty body returns bad request", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{approved: true})

		rec := postDecision(t, mux, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "request body is empty")
	})

	t.Run("malformed json returns bad request", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{approved: true})

		rec := postDecision(t, mux, "{not json")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("scoring unavailable returns 503", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{err: fmt.Errorf("artifact corrupt")})

		rec := postDecision(t, mux, validBody())

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Scoring models not loaded. Please check server logs.", resp["error"])
	})

	t.Run("persistence failure still returns the decision", func(t *testing.T) {
		repo := &mockDecisionRepo{saveErr: fmt.Errorf("db down")}
		mux := newTestMux(repo, stubScorer{approved: true, limit: 7500, rate: 7.5})

		rec := postDecision(t, mux, validBody())

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DecisionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.ApprovalStatus)
	})
}

func TestGet(t *testing.T) {
	t.Run("invalid id returns bad request", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/decisions/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing decision returns not found", func(t *testing.T) {
		mux := newTestMux(&mockDecisionRepo{}, stubScorer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/decisions/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns a stored decision", func(t *testing.T) {
		record := storedRecord(t)
		repo := &mockDecisionRepo{
			findByIDFunc: func(_ context.Context, id uuid.UUID) (*model.DecisionRecord, error) {
				assert.Equal(t, record.ID(), id)
				return record, nil
			},
		}
		mux := newTestMux(repo, stubScorer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/decisions/"+record.ID().String(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DecisionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, record.ID(), resp.ID)
		assert.True(t, resp.ApprovalStatus)
		assert.Equal(t, 7500.0, resp.CreditLimit)
	})
}

func TestList(t *testing.T) {
	t.Run("returns the applicant's decisions", func(t *testing.T) {
		first := storedRecord(t)
		second := storedRecord(t)
		repo := &mockDecisionRepo{
			findByApplicantIDFunc: func(_ context.Context, applicantID string, limit, offset int) ([]*model.DecisionRecord, error) {
				assert.Equal(t, "applicant-0001", applicantID)
				assert.Equal(t, 10, limit)
				assert.Equal(t, 5, offset)
				return []*model.DecisionRecord{first, second}, nil
			},
		}
		mux := newTestMux(repo, stubScorer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applicants/applicant-0001/decisions?limit=10&offset=5", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.ListDecisionsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Decisions, 2)
		assert.Equal(t, first.ID(), resp.Decisions[0].ID)
	})

	t.Run("repository failure returns internal error", func(t *testing.T) {
		repo := &mockDecisionRepo{
			findByApplicantIDFunc: func(_ context.Context, _ string, _, _ int) ([]*model.DecisionRecord, error) {
				return nil, fmt.Errorf("connection reset")
			},
		}
		mux := newTestMux(repo, stubScorer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/applicants/applicant-0001/decisions", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
