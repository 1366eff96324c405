package billing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockPatients, *echo.Echo) {
	svc, patients := newTestService()
	return NewHandler(svc), patients, echo.New()
}

func TestHandler_CreateInvoice(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	body := `{"patient":"` + pid.String() + `","amount":120.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvoice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var inv Invoice
	json.Unmarshal(rec.Body.Bytes(), &inv)
	if inv.Status != InvoicePending {
		t.Errorf("expected PENDING, got %s", inv.Status)
	}
}

func TestHandler_CreateInvoice_MissingAmount(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	body := `{"patient":"` + pid.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateInvoice(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var fields map[string][]string
	json.Unmarshal(rec.Body.Bytes(), &fields)
	if len(fields["amount"]) == 0 {
		t.Error("expected amount field error")
	}
}

func TestHandler_ListInvoices_BadPatientFilter(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices?patient_id=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListInvoices(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty list, got %s", got)
	}
}

func TestHandler_CreateClaim(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	inv, err := h.svc.CreateInvoice(nil, &InvoiceInput{
		Patient: strPtr(pid.String()),
		Amount:  300.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"patient":"` + pid.String() + `","invoice":"` + inv.ID.String() + `","policy_number":"POL-9"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateClaim(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var cl InsuranceClaim
	json.Unmarshal(rec.Body.Bytes(), &cl)
	if cl.Status != ClaimSubmitted {
		t.Errorf("expected SUBMITTED, got %s", cl.Status)
	}
}
