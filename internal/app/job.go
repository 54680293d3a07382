package app

import (
	"context"
	"time"

	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/internal/ports"
	"github.com/bft-labs/idn-disable/pkg/log"
)

// InvokeParams are the job inputs for the invoke hook.
type InvokeParams struct {
	AccountID              string
	Address                string
	ExternalVerificationID string
	ForceProvisioning      domain.OptionalBool
}

// Request converts the parameters into a domain request.
func (p InvokeParams) Request() domain.DisableRequest {
	return domain.DisableRequest{
		AccountID:              p.AccountID,
		ExternalVerificationID: p.ExternalVerificationID,
		ForceProvisioning:      p.ForceProvisioning,
	}
}

// ErrorParams are passed to the error hook after a failed invoke.
type ErrorParams struct {
	InvokeParams
	Err error
}

// HaltParams are passed to the halt hook.
type HaltParams struct {
	AccountID string
	Reason    string
}

// Job runs one account disable through the invoke, error and halt hooks.
// Create a new Job per invocation.
type Job struct {
	disabler  ports.AccountDisabler
	headers   ports.HeaderProvider
	logger    ports.Logger
	lifecycle *Lifecycle
	now       func() time.Time
}

// Option configures a Job.
type Option func(*Job)

// WithClock overrides the clock used for halt timestamps.
func WithClock(now func() time.Time) Option {
	return func(j *Job) {
		j.now = now
	}
}

// NewJob creates a job in the Pending state.
func NewJob(disabler ports.AccountDisabler, headers ports.HeaderProvider, logger ports.Logger, opts ...Option) *Job {
	j := &Job{
		disabler:  disabler,
		headers:   headers,
		logger:    logger,
		lifecycle: NewLifecycle(logger),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// State returns the job's current state.
func (j *Job) State() domain.State {
	return j.lifecycle.State()
}

// Invoke disables the account described by p. Non-2xx responses are returned
// as *domain.DisableError for the framework to classify.
func (j *Job) Invoke(ctx context.Context, p InvokeParams, jc ports.JobContext) (domain.DisableResult, error) {
	if err := j.lifecycle.TransitionTo(domain.StateRequesting, "invoke"); err != nil {
		return domain.DisableResult{}, err
	}

	result, err := j.invoke(ctx, p, jc)
	if err != nil {
		j.finish(domain.StateFailed, err.Error())
		return domain.DisableResult{}, err
	}

	j.finish(domain.StateSucceeded, "disable accepted")
	return result, nil
}

func (j *Job) invoke(ctx context.Context, p InvokeParams, jc ports.JobContext) (domain.DisableResult, error) {
	req := p.Request()
	if err := req.Validate(); err != nil {
		return domain.DisableResult{}, err
	}

	baseURL, err := ResolveBaseURL(p.Address, jc)
	if err != nil {
		return domain.DisableResult{}, err
	}

	headers, err := j.headers.Headers(ctx, jc)
	if err != nil {
		return domain.DisableResult{}, err
	}

	return j.disabler.Disable(ctx, baseURL, headers, req)
}

// finish records a terminal state. A halt that won the race keeps the job
// Halted.
func (j *Job) finish(state domain.State, reason string) {
	if err := j.lifecycle.TransitionTo(state, reason); err != nil {
		j.logger.Warn("job already finished", log.String("state", j.State().String()), log.Err(err))
	}
}

// Error is the error hook. It performs no recovery and returns p.Err
// unchanged so the framework can decide on retries from its status code.
func (j *Job) Error(ctx context.Context, p ErrorParams, jc ports.JobContext) (domain.DisableResult, error) {
	fields := []log.Field{log.AccountID(p.AccountID), log.Err(p.Err)}
	if de, ok := domain.AsDisableError(p.Err); ok {
		fields = append(fields, log.StatusCode(de.StatusCode), log.Bool("retryable", de.IsRetryable()))
	}
	j.logger.Debug("deferring error to framework", fields...)

	return domain.DisableResult{}, p.Err
}

// Halt is the halt hook. There is nothing to roll back, so it always
// succeeds.
func (j *Job) Halt(ctx context.Context, p HaltParams, jc ports.JobContext) domain.HaltResult {
	j.logger.Info("account disable job is being halted",
		log.AccountID(p.AccountID),
		log.String("reason", p.Reason),
	)

	if err := j.lifecycle.TransitionTo(domain.StateHalted, p.Reason); err != nil {
		j.logger.Warn("halt after job finished", log.String("state", j.State().String()))
	}

	return domain.NewHaltResult(p.AccountID, p.Reason, j.now())
}
