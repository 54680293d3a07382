package ports

import (
	"context"
	"net/http"
)

// JobContext carries the secrets and environment the job framework hands to
// every hook.
type JobContext struct {
	Secrets     map[string]string
	Environment map[string]string
}

// Secret returns the named secret, or "" if absent.
func (c JobContext) Secret(name string) string {
	return c.Secrets[name]
}

// Env returns the named environment value, or "" if absent.
func (c JobContext) Env(name string) string {
	return c.Environment[name]
}

// HeaderProvider builds request headers, including authorization, for a job.
type HeaderProvider interface {
	Headers(ctx context.Context, jc JobContext) (http.Header, error)
}
