package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/internal/ports"
)

// EnvAddress is the environment entry holding the default API base URL.
const EnvAddress = "ADDRESS"

// ResolveBaseURL picks the job's address parameter, falling back to the
// ADDRESS environment entry. The result is an absolute http(s) URL without a
// trailing slash.
func ResolveBaseURL(address string, jc ports.JobContext) (string, error) {
	if address == "" {
		address = jc.Env(EnvAddress)
	}
	if address == "" {
		return "", domain.ErrMissingAddress
	}

	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) URL", domain.ErrInvalidAddress, address)
	}

	return strings.TrimSuffix(address, "/"), nil
}
