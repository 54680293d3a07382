// Package idndisable disables SailPoint IdentityNow accounts.
//
// Example usage:
//
//	cfg := idndisable.DefaultConfig()
//	cfg.Address = "https://acme.api.identitynow.com"
//	cfg.BearerToken = token
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	res, err := idndisable.Disable(ctx, cfg, idndisable.InvokeParams{AccountID: id}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package idndisable

import (
	"context"
	"net/http"

	httpadapter "github.com/bft-labs/idn-disable/internal/adapters/http"
	"github.com/bft-labs/idn-disable/internal/app"
	"github.com/bft-labs/idn-disable/internal/auth"
	"github.com/bft-labs/idn-disable/internal/cliconfig"
	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/pkg/log"
)

// Config holds the address, credentials and HTTP settings.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Job runs one disable through the invoke, error and halt hooks.
type Job = app.Job

type (
	InvokeParams  = app.InvokeParams
	ErrorParams   = app.ErrorParams
	HaltParams    = app.HaltParams
	DisableResult = domain.DisableResult
	HaltResult    = domain.HaltResult
	DisableError  = domain.DisableError
	OptionalBool  = domain.OptionalBool
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// NewJob wires a Job for cfg. A nil logger discards output.
func NewJob(cfg Config, logger log.Logger) *Job {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return app.NewJob(
		httpadapter.NewAccountDisabler(client, logger),
		auth.NewBuilder(client),
		logger,
	)
}

// Disable runs the invoke hook and, on failure, the error hook. Non-2xx
// responses are returned as *DisableError.
func Disable(ctx context.Context, cfg Config, params InvokeParams, logger log.Logger) (DisableResult, error) {
	job := NewJob(cfg, logger)
	jc := cfg.JobContext()

	res, err := job.Invoke(ctx, params, jc)
	if err != nil {
		return job.Error(ctx, ErrorParams{InvokeParams: params, Err: err}, jc)
	}
	return res, nil
}
