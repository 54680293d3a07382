package ports

import (
	"context"
	"net/http"

	"github.com/bft-labs/idn-disable/internal/domain"
)

// AccountDisabler issues a single disable request.
type AccountDisabler interface {
	// Disable posts the request to baseURL with the given headers.
	// A non-2xx response is returned as a *domain.DisableError; transport
	// failures are returned wrapped and carry no status code.
	Disable(ctx context.Context, baseURL string, headers http.Header, req domain.DisableRequest) (domain.DisableResult, error)
}
