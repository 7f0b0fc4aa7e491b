package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/application/usecase"
	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/pkg/auth"
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

// Compile-time assertion that DecisionServiceHandler implements DecisionServiceServer.
var _ DecisionServiceServer = (*DecisionServiceHandler)(nil)

// DecisionServiceHandler implements the gRPC DecisionServiceServer interface.
type DecisionServiceHandler struct {
	UnimplementedDecisionServiceServer
	decideApplication *usecase.DecideApplication
	getDecision       *usecase.GetDecision
	listDecisions     *usecase.ListDecisions
	logger            *slog.Logger
}

// NewDecisionServiceHandler creates a new gRPC handler.
func NewDecisionServiceHandler(
	decideApplication *usecase.DecideApplication,
	getDecision *usecase.GetDecision,
	listDecisions *usecase.ListDecisions,
	logger *slog.Logger,
) *DecisionServiceHandler {
	return &DecisionServiceHandler{
		decideApplication: decideApplication,
		getDecision:       getDecision,
		listDecisions:     listDecisions,
		logger:            logger,
	}
}

// Proto-aligned request/response message types.

// DecideApplicationRequest represents the proto DecideApplicationRequest message.
type DecideApplicationRequest struct {
	ApplicantID          string  `json:"applicant_id"`
	AnnualIncome         float64 `json:"annual_income"`
	SelfReportedDebt     float64 `json:"self_reported_debt"`
	SelfReportedExpenses float64 `json:"self_reported_expenses"`
	RequestedAmount      float64 `json:"requested_amount"`
	Age                  int32   `json:"age"`
	Province             string  `json:"province"`
	EmploymentStatus     string  `json:"employment_status"`
	MonthsEmployed       int32   `json:"months_employed"`
	CreditScore          int32   `json:"credit_score"`
	TotalCreditLimit     float64 `json:"total_credit_limit"`
	CreditUtilization    float64 `json:"credit_utilization"`
	NumOpenAccounts      int32   `json:"num_open_accounts"`
	NumCreditInquiries   int32   `json:"num_credit_inquiries"`
	PaymentHistory       string  `json:"payment_history"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
}

// DecisionMsg represents the proto Decision message.
type DecisionMsg struct {
	ID             string  `json:"id"`
	ApplicantID    string  `json:"applicant_id"`
	ApprovalStatus bool    `json:"approval_status"`
	CreditLimit    float64 `json:"credit_limit"`
	InterestRate   float64 `json:"interest_rate"`
	Reason         string  `json:"reason"`
	CreatedAt      string  `json:"created_at"`
}

// DecideApplicationResponse represents the proto DecideApplicationResponse message.
type DecideApplicationResponse struct {
	Decision *DecisionMsg `json:"decision"`
}

// GetDecisionRequest represents the proto GetDecisionRequest message.
type GetDecisionRequest struct {
	ID string `json:"id"`
}

// GetDecisionResponse represents the proto GetDecisionResponse message.
type GetDecisionResponse struct {
	Decision *DecisionMsg `json:"decision"`
}

// ListDecisionsRequest represents the proto ListDecisionsRequest message.
type ListDecisionsRequest struct {
	ApplicantID string `json:"applicant_id"`
	Limit       int32  `json:"limit"`
	Offset      int32  `json:"offset"`
}

// ListDecisionsResponse represents the proto ListDecisionsResponse message.
type ListDecisionsResponse struct {
	Decisions []*DecisionMsg `json:"decisions"`
}

func decisionMsg(d dto.DecisionResponse) *DecisionMsg {
	return &DecisionMsg{
		ID:             d.ID.String(),
		ApplicantID:    d.ApplicantID,
		ApprovalStatus: d.ApprovalStatus,
		CreditLimit:    d.CreditLimit,
		InterestRate:   d.InterestRate,
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// DecideApplication handles a credit decision request.
func (h *DecisionServiceHandler) DecideApplication(ctx context.Context, req *DecideApplicationRequest) (*DecideApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	h.logger.Info("deciding application",
		slog.String("applicant_id", req.ApplicantID),
	)

	result, err := h.decideApplication.Execute(ctx, dto.DecideApplicationRequest{
		ApplicantID:          req.ApplicantID,
		AnnualIncome:         req.AnnualIncome,
		SelfReportedDebt:     req.SelfReportedDebt,
		SelfReportedExpenses: req.SelfReportedExpenses,
		RequestedAmount:      req.RequestedAmount,
		Age:                  int(req.Age),
		Province:             req.Province,
		EmploymentStatus:     req.EmploymentStatus,
		MonthsEmployed:       int(req.MonthsEmployed),
		CreditScore:          int(req.CreditScore),
		TotalCreditLimit:     req.TotalCreditLimit,
		CreditUtilization:    req.CreditUtilization,
		NumOpenAccounts:      int(req.NumOpenAccounts),
		NumCreditInquiries:   int(req.NumCreditInquiries),
		PaymentHistory:       req.PaymentHistory,
		MonthlyExpenses:      req.MonthlyExpenses,
	})
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			return nil, status.Error(codes.InvalidArgument, verr.Error())
		case errors.Is(err, model.ErrScoringUnavailable):
			return nil, status.Error(codes.Unavailable, "scoring models are not loaded")
		default:
			h.logger.Error("failed to decide application",
				slog.String("applicant_id", req.ApplicantID),
				slog.String("error", err.Error()),
			)
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &DecideApplicationResponse{Decision: decisionMsg(result)}, nil
}

// GetDecision handles a decision lookup request.
func (h *DecisionServiceHandler) GetDecision(ctx context.Context, req *GetDecisionRequest) (*GetDecisionResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	decisionID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
	}

	result, err := h.getDecision.Execute(ctx, dto.GetDecisionRequest{DecisionID: decisionID})
	if err != nil {
		if errors.Is(err, model.ErrDecisionNotFound) {
			return nil, status.Errorf(codes.NotFound, "decision %s not found", decisionID)
		}
		h.logger.Error("failed to get decision",
			slog.String("decision_id", decisionID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetDecisionResponse{Decision: decisionMsg(result)}, nil
}

// ListDecisions handles a decision history request.
func (h *DecisionServiceHandler) ListDecisions(ctx context.Context, req *ListDecisionsRequest) (*ListDecisionsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.listDecisions.Execute(ctx, dto.ListDecisionsRequest{
		ApplicantID: req.ApplicantID,
		Limit:       int(req.Limit),
		Offset:      int(req.Offset),
	})
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return nil, status.Error(codes.InvalidArgument, verr.Error())
		}
		h.logger.Error("failed to list decisions",
			slog.String("applicant_id", req.ApplicantID),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	decisions := make([]*DecisionMsg, 0, len(result.Decisions))
	for _, d := range result.Decisions {
		decisions = append(decisions, decisionMsg(d))
	}

	return &ListDecisionsResponse{Decisions: decisions}, nil
}
