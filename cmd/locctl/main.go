package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sindhuatluri/LOC/internal/application/dto"
)

var (
	version = "v0.0.1-default"
	commit  = ""

	addrFlag = &cli.StringFlag{
		Name:    "addr",
		Usage:   "Base URL of the decision service HTTP API",
		Value:   "http://localhost:8090",
		EnvVars: []string{"LOC_ADDR"},
	}

	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Request timeout",
		Value: 10 * time.Second,
	}

	applicantFlag = &cli.StringFlag{
		Name:  "applicant",
		Usage: "Applicant identifier",
		Value: "APP-100001",
	}

	annualIncomeFlag = &cli.Float64Flag{
		Name:  "annual-income",
		Usage: "Annual income in CAD",
		Value: 200000,
	}

	selfReportedDebtFlag = &cli.Float64Flag{
		Name:  "self-reported-debt",
		Usage: "Self-reported monthly debt payments in CAD",
		Value: 1000,
	}

	selfReportedExpensesFlag = &cli.Float64Flag{
		Name:  "self-reported-expenses",
		Usage: "Self-reported monthly expenses in CAD",
		Value: 2000,
	}

	requestedAmountFlag = &cli.Float64Flag{
		Name:  "requested-amount",
		Usage: "Requested credit limit in CAD",
		Value: 10000,
	}

	ageFlag = &cli.IntFlag{
		Name:  "age",
		Usage: "Applicant age in years",
		Value: 35,
	}

	provinceFlag = &cli.StringFlag{
		Name:  "province",
		Usage: "Province code [ON, BC]",
		Value: "ON",
	}

	employmentStatusFlag = &cli.StringFlag{
		Name:  "employment-status",
		Usage: "Employment status [Full-time, Part-time, Unemployed]",
		Value: "Full-time",
	}

	monthsEmployedFlag = &cli.IntFlag{
		Name:  "months-employed",
		Usage: "Months at current employment",
		Value: 24,
	}

	creditScoreFlag = &cli.IntFlag{
		Name:  "credit-score",
		Usage: "Credit bureau score (300-900)",
		Value: 700,
	}

	totalCreditLimitFlag = &cli.Float64Flag{
		Name:  "total-credit-limit",
		Usage: "Total existing credit limit in CAD",
		Value: 15000,
	}

	creditUtilizationFlag = &cli.Float64Flag{
		Name:  "credit-utilization",
		Usage: "Credit utilization percentage (0-100)",
		Value: 30,
	}

	openAccountsFlag = &cli.IntFlag{
		Name:  "open-accounts",
		Usage: "Number of open credit accounts",
		Value: 3,
	}

	creditInquiriesFlag = &cli.IntFlag{
		Name:  "credit-inquiries",
		Usage: "Credit inquiries in the last 12 months",
		Value: 1,
	}

	paymentHistoryFlag = &cli.StringFlag{
		Name:  "payment-history",
		Usage: `Payment history [On Time, Late <30, Late 30-60, Late >60]`,
		Value: "On Time",
	}

	monthlyExpensesFlag = &cli.Float64Flag{
		Name:  "monthly-expenses",
		Usage: "Monthly expenses in CAD",
		Value: 2500,
	}

	readyFlag = &cli.BoolFlag{
		Name:  "ready",
		Usage: "Probe /readyz instead of /healthz",
	}

	decideCmd = &cli.Command{
		Name:  "decide",
		Usage: "Submit a credit application and print the decision",
		UsageText: `locctl decide                                          # smoke scenario defaults
   locctl decide --credit-score 640 --applicant APP-2     # denied, low score`,
		HideHelpCommand: true,
		Action:          cmdDecide,
		Flags: []cli.Flag{
			applicantFlag,
			annualIncomeFlag,
			selfReportedDebtFlag,
			selfReportedExpensesFlag,
			requestedAmountFlag,
			ageFlag,
			provinceFlag,
			employmentStatusFlag,
			monthsEmployedFlag,
			creditScoreFlag,
			totalCreditLimitFlag,
			creditUtilizationFlag,
			openAccountsFlag,
			creditInquiriesFlag,
			paymentHistoryFlag,
			monthlyExpensesFlag,
		},
	}

	healthCmd = &cli.Command{
		Name:            "health",
		Usage:           "Probe the decision service health endpoints",
		UsageText:       "locctl health [--ready]",
		HideHelpCommand: true,
		Action:          cmdHealth,
		Flags: []cli.Flag{
			readyFlag,
		},
	}
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	app := &cli.App{
		Name:            "locctl",
		Version:         fmt.Sprintf("%s (commit: %s)", version, commit),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "CLI for the line of credit decision service",
		Flags: []cli.Flag{
			addrFlag,
			timeoutFlag,
		},
		Commands: []*cli.Command{
			decideCmd,
			healthCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func cmdDecide(c *cli.Context) error {
	req := dto.DecideApplicationRequest{
		ApplicantID:          c.String(applicantFlag.Name),
		AnnualIncome:         c.Float64(annualIncomeFlag.Name),
		SelfReportedDebt:     c.Float64(selfReportedDebtFlag.Name),
		SelfReportedExpenses: c.Float64(selfReportedExpensesFlag.Name),
		RequestedAmount:      c.Float64(requestedAmountFlag.Name),
		Age:                  c.Int(ageFlag.Name),
		Province:             c.String(provinceFlag.Name),
		EmploymentStatus:     c.String(employmentStatusFlag.Name),
		MonthsEmployed:       c.Int(monthsEmployedFlag.Name),
		CreditScore:          c.Int(creditScoreFlag.Name),
		TotalCreditLimit:     c.Float64(totalCreditLimitFlag.Name),
		CreditUtilization:    c.Float64(creditUtilizationFlag.Name),
		NumOpenAccounts:      c.Int(openAccountsFlag.Name),
		NumCreditInquiries:   c.Int(creditInquiriesFlag.Name),
		PaymentHistory:       c.String(paymentHistoryFlag.Name),
		MonthlyExpenses:      c.Float64(monthlyExpensesFlag.Name),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := baseURL(c) + "/api/v1/decisions"
	resp, err := httpClient(c).Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to call decision service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("decision request failed: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	var decision dto.DecisionResponse
	if err := json.Unmarshal(data, &decision); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return writeJSON(decision)
}

func cmdHealth(c *cli.Context) error {
	path := "/healthz"
	if c.Bool(readyFlag.Name) {
		path = "/readyz"
	}

	resp, err := httpClient(c).Get(baseURL(c) + path)
	if err != nil {
		return fmt.Errorf("failed to call decision service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var status map[string]any
	if err := json.Unmarshal(data, &status); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := writeJSON(status); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service not healthy: %s", resp.Status)
	}
	return nil
}

func baseURL(c *cli.Context) string {
	return strings.TrimSuffix(c.String(addrFlag.Name), "/")
}

func httpClient(c *cli.Context) *http.Client {
	return &http.Client{Timeout: c.Duration(timeoutFlag.Name)}
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}
