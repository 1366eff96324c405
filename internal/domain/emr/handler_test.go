package emr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockPatients, *echo.Echo) {
	patients := newMockPatients()
	svc := NewService(newMockRepo(), patients)
	return NewHandler(svc), patients, echo.New()
}

func TestHandler_Get_LazyCreate(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patient_id")
	c.SetParamValues(pid.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var r Record
	json.Unmarshal(rec.Body.Bytes(), &r)
	if r.PatientID != pid {
		t.Errorf("expected patient %s, got %s", pid, r.PatientID)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patient_id")
	c.SetParamValues(uuid.New().String())

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["detail"] != "Patient not found" {
		t.Errorf("unexpected detail: %q", body["detail"])
	}
}

func TestHandler_Update(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	body := `{"active_conditions":"Asthma","last_glucose":97}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patient_id")
	c.SetParamValues(pid.String())

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var r Record
	json.Unmarshal(rec.Body.Bytes(), &r)
	if r.ActiveConditions != "Asthma" {
		t.Errorf("expected Asthma, got %s", r.ActiveConditions)
	}
}

func TestHandler_Update_BadType(t *testing.T) {
	h, patients, e := newTestHandler()
	pid := patients.add("John Doe")

	body := `{"last_cholesterol":{"value":190}}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patient_id")
	c.SetParamValues(pid.String())

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var fields map[string][]string
	json.Unmarshal(rec.Body.Bytes(), &fields)
	if len(fields["last_cholesterol"]) == 0 {
		t.Error("expected last_cholesterol field error")
	}
}
