package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "ok", map[string]string{"name": "Flat White"})

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var env Response
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.Status || env.Message != "ok" || env.Data == nil {
		t.Errorf("envelope = %+v", env)
	}
	if env.Errors != nil {
		t.Errorf("errors present on success: %v", env.Errors)
	}
}

func TestResponseBadRequestCarriesErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "validation failed", map[string]string{"email": "required"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}

	var env Response
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status {
		t.Error("status true on error response")
	}
	if env.Errors == nil {
		t.Error("errors missing")
	}
	if env.Data != nil {
		t.Errorf("data present on error: %v", env.Data)
	}
}
