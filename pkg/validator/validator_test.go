package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/charmstore/pkg/validator"
)

type sampleStruct struct {
	ClientName string  `validate:"required,min=1,max=10"`
	ImageURL   string  `validate:"omitempty,url"`
	Price      float64 `validate:"gte=0"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ClientName: "monitor",
		Price:      19.99,
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ClientName"] != "This field is required" {
		t.Errorf("unexpected ClientName message: %q", m["ClientName"])
	}
}

func TestFormatValidationErrors_url(t *testing.T) {
	s := sampleStruct{ClientName: "ok", ImageURL: "not a url"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ImageURL"] != "Must be a valid URL" {
		t.Errorf("unexpected ImageURL message: %q", m["ImageURL"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ClientName: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ClientName"] != "Maximum length is 10" {
		t.Errorf("unexpected ClientName message: %q", m["ClientName"])
	}
}

func TestFormatValidationErrors_gte(t *testing.T) {
	s := sampleStruct{ClientName: "ok", Price: -1}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Price"] != "Must be greater than or equal to 0" {
		t.Errorf("unexpected Price message: %q", m["Price"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type statusReq struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=255"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"client_name":"uptime-probe"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[statusReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.ClientName != "uptime-probe" {
		t.Errorf("unexpected ClientName: %q", req.ClientName)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[statusReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[statusReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing client_name")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_fieldNameFromJSONTag(t *testing.T) {
	body := `{"client_name":""}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[statusReq](w, r)
	if ok {
		t.Fatal("expected ok=false for empty client_name")
	}
	if !strings.Contains(w.Body.String(), "client_name") {
		t.Errorf("expected json field name in body, got: %s", w.Body.String())
	}
}
