package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/pkg/log"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.UTC)

func newTestDisabler() *AccountDisabler {
	return NewAccountDisabler(http.DefaultClient, log.NewNoopLogger(), WithClock(func() time.Time { return fixedNow }))
}

// respond returns a handler replying with status and body.
func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestDisable_RequestShape(t *testing.T) {
	const accountID = "a/b?c#d e%f"

	var (
		gotMethod string
		gotPath   string
		gotAuth   string
		gotCT     string
		gotBody   map[string]any
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"id":"t-1"}`)
	}))
	defer ts.Close()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret")

	_, err := newTestDisabler().Disable(context.Background(), ts.URL, headers, domain.DisableRequest{
		AccountID:         accountID,
		ForceProvisioning: domain.Bool(false),
	})
	if err != nil {
		t.Fatalf("Disable() error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}

	wantPath := "/v3/accounts/a%2Fb%3Fc%23d%20e%25f/disable"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}
	segment := strings.TrimSuffix(strings.TrimPrefix(gotPath, "/v3/accounts/"), "/disable")
	decoded, err := url.PathUnescape(segment)
	if err != nil || decoded != accountID {
		t.Errorf("decoded segment = %q (%v), want %q", decoded, err, accountID)
	}

	if v, ok := gotBody["forceProvisioning"]; !ok || v != false {
		t.Errorf("forceProvisioning = %v (present=%v), want explicit false", v, ok)
	}
	if _, ok := gotBody["externalVerificationId"]; ok {
		t.Error("externalVerificationId should be omitted")
	}
}

func TestDisable_OmitsUnsetForceProvisioning(t *testing.T) {
	var raw string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer ts.Close()

	_, err := newTestDisabler().Disable(context.Background(), ts.URL, nil, domain.DisableRequest{
		AccountID:              "acc-1",
		ExternalVerificationID: "ev-9",
	})
	if err != nil {
		t.Fatalf("Disable() error: %v", err)
	}
	if raw != `{"externalVerificationId":"ev-9"}` {
		t.Errorf("body = %s", raw)
	}
}

func TestDisable_Success(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantTaskID  string
		wantMessage string
	}{
		{
			name:        "id and message",
			status:      http.StatusAccepted,
			body:        `{"id":"t-1","message":"ok"}`,
			wantTaskID:  "t-1",
			wantMessage: "ok",
		},
		{
			name:        "taskId fallback",
			status:      http.StatusAccepted,
			body:        `{"taskId":"t-2"}`,
			wantTaskID:  "t-2",
			wantMessage: domain.DefaultDisableMessage,
		},
		{
			name:        "id wins over taskId",
			status:      http.StatusOK,
			body:        `{"id":"t-3","taskId":"t-4"}`,
			wantTaskID:  "t-3",
			wantMessage: domain.DefaultDisableMessage,
		},
		{
			name:        "empty id falls through",
			status:      http.StatusAccepted,
			body:        `{"id":"","taskId":"t-5","message":""}`,
			wantTaskID:  "t-5",
			wantMessage: domain.DefaultDisableMessage,
		},
		{
			name:        "no task id",
			status:      http.StatusAccepted,
			body:        `{}`,
			wantTaskID:  "",
			wantMessage: domain.DefaultDisableMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(respond(tt.status, tt.body))
			defer ts.Close()

			got, err := newTestDisabler().Disable(context.Background(), ts.URL, nil, domain.DisableRequest{AccountID: "acc-1"})
			if err != nil {
				t.Fatalf("Disable() error: %v", err)
			}

			want := domain.DisableResult{
				AccountID:  "acc-1",
				Disabled:   true,
				TaskID:     tt.wantTaskID,
				Message:    tt.wantMessage,
				DisabledAt: "2024-05-06T07:08:09.010Z",
				Address:    ts.URL,
			}
			if got != want {
				t.Errorf("Disable() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDisable_SuccessWithInvalidJSON(t *testing.T) {
	ts := httptest.NewServer(respond(http.StatusAccepted, "accepted"))
	defer ts.Close()

	_, err := newTestDisabler().Disable(context.Background(), ts.URL, nil, domain.DisableRequest{AccountID: "acc-1"})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if _, ok := domain.AsDisableError(err); ok {
		t.Errorf("decode error should not carry a status code: %v", err)
	}
}

func TestDisable_ErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "detail code with tracking id",
			status:      http.StatusBadRequest,
			body:        `{"detailCode":"ERR1","trackingId":"tr-9"}`,
			wantMessage: "Failed to disable account: ERR1 - tr-9",
		},
		{
			name:        "detail code without tracking id",
			status:      http.StatusNotFound,
			body:        `{"detailCode":"404 Not found"}`,
			wantMessage: "Failed to disable account: 404 Not found - ",
		},
		{
			name:        "detail code wins over message",
			status:      http.StatusBadRequest,
			body:        `{"detailCode":"ERR2","trackingId":"tr-1","message":"ignored"}`,
			wantMessage: "Failed to disable account: ERR2 - tr-1",
		},
		{
			name:        "message only",
			status:      http.StatusForbidden,
			body:        `{"message":"insufficient scope"}`,
			wantMessage: "Failed to disable account: insufficient scope",
		},
		{
			name:        "json without known fields",
			status:      http.StatusConflict,
			body:        `{"error":"x"}`,
			wantMessage: "Failed to disable account: HTTP 409",
		},
		{
			name:        "plain text body",
			status:      http.StatusInternalServerError,
			body:        "server exploded",
			wantMessage: "Failed to disable account: server exploded",
		},
		{
			name:        "empty body",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "Failed to disable account: HTTP 500",
		},
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"message":"Rate Limit Exceeded"}`,
			wantMessage: "Failed to disable account: Rate Limit Exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(respond(tt.status, tt.body))
			defer ts.Close()

			_, err := newTestDisabler().Disable(context.Background(), ts.URL, nil, domain.DisableRequest{AccountID: "acc-1"})
			if err == nil {
				t.Fatal("expected error")
			}

			de, ok := domain.AsDisableError(err)
			if !ok {
				t.Fatalf("error %T is not a *DisableError", err)
			}
			if de.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", de.Message, tt.wantMessage)
			}
			if de.StatusCode != tt.status {
				t.Errorf("statusCode = %d, want %d", de.StatusCode, tt.status)
			}
		})
	}
}

type failingClient struct {
	err error
}

func (c failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, c.err
}

func TestDisable_TransportErrorUnchanged(t *testing.T) {
	transportErr := errors.New("connection refused")
	d := NewAccountDisabler(failingClient{err: transportErr}, log.NewNoopLogger())

	_, err := d.Disable(context.Background(), "https://tenant.api.identitynow.com", nil, domain.DisableRequest{AccountID: "acc-1"})
	if err != transportErr {
		t.Errorf("Disable() error = %v, want transport error unchanged", err)
	}
}

func TestDisable_MissingAccountID(t *testing.T) {
	d := NewAccountDisabler(failingClient{}, log.NewNoopLogger())
	_, err := d.Disable(context.Background(), "https://x", nil, domain.DisableRequest{})
	if !errors.Is(err, domain.ErrMissingAccountID) {
		t.Errorf("Disable() error = %v, want ErrMissingAccountID", err)
	}
}
