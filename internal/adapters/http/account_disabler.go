package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/internal/ports"
	"github.com/bft-labs/idn-disable/pkg/log"
)

const (
	accountsPath  = "/v3/accounts/"
	disableSuffix = "/disable"
)

// AccountDisabler implements ports.AccountDisabler against the IdentityNow
// v3 accounts API.
type AccountDisabler struct {
	client ports.HTTPClient
	logger ports.Logger
	now    func() time.Time
}

// Option configures an AccountDisabler.
type Option func(*AccountDisabler)

// WithClock overrides the clock used for DisabledAt.
func WithClock(now func() time.Time) Option {
	return func(d *AccountDisabler) {
		d.now = now
	}
}

// NewAccountDisabler creates a disabler sending requests through client.
func NewAccountDisabler(client ports.HTTPClient, logger ports.Logger, opts ...Option) *AccountDisabler {
	d := &AccountDisabler{
		client: client,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DisableURL returns the endpoint for disabling accountID under baseURL.
func DisableURL(baseURL, accountID string) string {
	return baseURL + accountsPath + EncodePathComponent(accountID) + disableSuffix
}

// Disable posts one disable request and classifies the response.
// Transport errors are returned unchanged.
func (d *AccountDisabler) Disable(ctx context.Context, baseURL string, headers http.Header, req domain.DisableRequest) (domain.DisableResult, error) {
	if err := req.Validate(); err != nil {
		return domain.DisableResult{}, err
	}

	d.logger.Info("starting account disable", log.AccountID(req.AccountID))

	payload, err := json.Marshal(req.Body())
	if err != nil {
		return domain.DisableResult{}, fmt.Errorf("marshal disable request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, DisableURL(baseURL, req.AccountID), bytes.NewReader(payload))
	if err != nil {
		return domain.DisableResult{}, fmt.Errorf("create request: %w", err)
	}
	if headers != nil {
		httpReq.Header = headers.Clone()
	}
	if httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return domain.DisableResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain.DisableResult{}, d.errorFromResponse(req.AccountID, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.DisableResult{}, fmt.Errorf("read disable response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return domain.DisableResult{}, fmt.Errorf("decode disable response: invalid JSON (status %d)", resp.StatusCode)
	}

	message := truthyString(gjson.GetBytes(body, "message"))
	if message == "" {
		message = domain.DefaultDisableMessage
	}

	result := domain.DisableResult{
		AccountID:  req.AccountID,
		Disabled:   true,
		TaskID:     firstTruthy(body, "id", "taskId"),
		Message:    message,
		DisabledAt: domain.FormatTimestamp(d.now()),
		Address:    baseURL,
	}

	d.logger.Info("account disable initiated",
		log.AccountID(req.AccountID),
		log.StatusCode(resp.StatusCode),
		log.String("taskId", result.TaskID),
	)

	return result, nil
}

// errorFromResponse reads the error body once and turns it into a
// *domain.DisableError. Body read or parse failures never escape.
func (d *AccountDisabler) errorFromResponse(accountID string, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		d.logger.Warn("failed to read error response", log.AccountID(accountID), log.Err(err))
		body = nil
	}

	if gjson.ValidBytes(body) {
		d.logger.Error("IdentityNow API error response",
			log.AccountID(accountID),
			log.StatusCode(resp.StatusCode),
			log.Any("body", json.RawMessage(body)),
		)
	} else {
		d.logger.Error("failed to parse error response",
			log.AccountID(accountID),
			log.StatusCode(resp.StatusCode),
		)
	}

	return domain.NewDisableError(resp.StatusCode, errorDetail(resp.StatusCode, body))
}
