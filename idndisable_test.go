package idndisable

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDisable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.EscapedPath() != "/v3/accounts/acc%2F1/disable" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"task-1"}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Address = srv.URL
	cfg.BearerToken = "tok"

	res, err := Disable(context.Background(), cfg, InvokeParams{AccountID: "acc/1"}, nil)
	if err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if !res.Disabled || res.AccountID != "acc/1" || res.TaskID != "task-1" {
		t.Errorf("Disable() = %+v", res)
	}
	if res.Address != srv.URL {
		t.Errorf("Address = %q, want %q", res.Address, srv.URL)
	}
}

func TestDisable_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"account not found"}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Address = srv.URL
	cfg.BearerToken = "tok"

	_, err := Disable(context.Background(), cfg, InvokeParams{AccountID: "missing"}, nil)
	var de *DisableError
	if !errors.As(err, &de) {
		t.Fatalf("Disable() error = %v, want *DisableError", err)
	}
	if de.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", de.StatusCode)
	}
	if de.Message != "Failed to disable account: account not found" {
		t.Errorf("Message = %q", de.Message)
	}
}
