package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	loanDomain "fondo-backend/internal/domain/loan"
	memberDomain "fondo-backend/internal/domain/member"
	"fondo-backend/internal/domain/uow"
	"fondo-backend/internal/testutil/loanmock"
	"fondo-backend/internal/testutil/memberstub"
	"fondo-backend/internal/testutil/notifymock"
	"fondo-backend/internal/testutil/uowmock"
	loanUC "fondo-backend/internal/usecase/loan"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

var testRates = loanUC.RateTable{AsociadoPct: 2.0, ClientePct: 3.0}

func asociado(memberID string) *memberDomain.Member {
	return &memberDomain.Member{MemberID: memberID, Name: "Marta", Email: memberID + "@example.com", Role: memberDomain.RoleAsociado}
}

func TestRequestLoan_Success(t *testing.T) {
	e := newEchoWithValidator()
	owner := strings.Repeat("b", 32)

	loans := &loanmock.Repo{
		GetPendingLoanByOwnerIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(context.Context, *loanDomain.Loan) error { return nil },
	}
	usecase := loanUC.NewUsecase(memberstub.New(asociado(owner)), loans, uowmock.New(), &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	body := map[string]any{
		"owner_id":    owner,
		"amount":      2_000_000,
		"term_months": 12,
		"description": "arreglo de techo",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Request(c); err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got loanUC.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.OwnerID != owner || got.Amount != 2_000_000 || got.Balance != 2_000_000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.Status != string(loanDomain.StatusPending) {
		t.Fatalf("status = %s, want pending", got.Status)
	}
	if got.MonthlyPayment != 168_478 {
		t.Fatalf("monthly_payment = %d, want 168478", got.MonthlyPayment)
	}
}

func TestRequestLoan_BindError(t *testing.T) {
	e := newEchoWithValidator()
	usecase := loanUC.NewUsecase(memberstub.New(), &loanmock.Repo{}, uowmock.New(), &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", strings.NewReader(`{"owner_id":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Request(c); err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestRequestLoan_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	usecase := loanUC.NewUsecase(memberstub.New(), &loanmock.Repo{}, uowmock.New(), &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	// uppercase owner id and zero amount both fail
	body := map[string]any{
		"owner_id":    strings.Repeat("B", 32),
		"amount":      0,
		"term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Request(c); err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "validation failed" || len(er.Details) == 0 {
		t.Fatalf("unexpected response: %+v", er)
	}
}

func TestRequestLoan_PendingExists(t *testing.T) {
	e := newEchoWithValidator()
	owner := strings.Repeat("b", 32)

	loans := &loanmock.Repo{
		GetPendingLoanByOwnerIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return &loanDomain.Loan{LoanID: strings.Repeat("c", 32), Status: loanDomain.StatusPending}, nil
		},
	}
	usecase := loanUC.NewUsecase(memberstub.New(asociado(owner)), loans, uowmock.New(), &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	body := map[string]any{"owner_id": owner, "amount": 500_000, "term_months": 6}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Request(c); err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestApproveLoan_NotFound(t *testing.T) {
	e := newEchoWithValidator()

	tx := &uowmock.UoW{
		WithinLoanTxFn: func(context.Context, string, func(uow.Repos, *loanDomain.Loan) error) error {
			return gorm.ErrRecordNotFound
		},
	}
	usecase := loanUC.NewUsecase(memberstub.New(), &loanmock.Repo{}, tx, &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/loans/:loan_id/approve")
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestQuote_Success(t *testing.T) {
	e := newEchoWithValidator()
	usecase := loanUC.NewUsecase(memberstub.New(), &loanmock.Repo{}, uowmock.New(), &notifymock.Notifier{}, testRates)
	h := NewLoanHandler(usecase)

	body := map[string]any{"amount": 2_000_000, "term_months": 12}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/loans/quote", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Quote(c); err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got loanUC.QuoteDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.MonthlyPayment != 168_478 || len(got.Schedule) != 12 {
		t.Fatalf("unexpected quote: monthly=%d rows=%d", got.MonthlyPayment, len(got.Schedule))
	}
	if got.Schedule[len(got.Schedule)-1].Remaining != 0 {
		t.Fatalf("schedule must end at zero, got %d", got.Schedule[len(got.Schedule)-1].Remaining)
	}
}
