// Package auth builds the authorization headers for IdentityNow requests
// from the secrets and environment of a job.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/bft-labs/idn-disable/internal/ports"
)

// Secret and environment names read from the job context.
const (
	SecretBearerToken = "BEARER_AUTH_TOKEN"

	SecretBasicUsername = "BASIC_USERNAME"
	SecretBasicPassword = "BASIC_PASSWORD"

	SecretClientCredentialsSecret = "OAUTH2_CLIENT_CREDENTIALS_CLIENT_SECRET"
	EnvClientCredentialsClientID  = "OAUTH2_CLIENT_CREDENTIALS_CLIENT_ID"
	EnvClientCredentialsTokenURL  = "OAUTH2_CLIENT_CREDENTIALS_TOKEN_URL"
	EnvClientCredentialsScope     = "OAUTH2_CLIENT_CREDENTIALS_SCOPE"
	EnvClientCredentialsAudience  = "OAUTH2_CLIENT_CREDENTIALS_AUDIENCE"
	EnvClientCredentialsAuthStyle = "OAUTH2_CLIENT_CREDENTIALS_AUTH_STYLE"

	SecretAuthorizationCodeToken = "OAUTH2_AUTHORIZATION_CODE_ACCESS_TOKEN"
)

var (
	// ErrNoCredentials is returned when no supported auth mode is configured.
	ErrNoCredentials = errors.New("auth: no credentials configured")

	// ErrIncompleteCredentials is returned when an auth mode is only partly configured.
	ErrIncompleteCredentials = errors.New("auth: incomplete credentials")
)

// Mode identifies which credential set produced the headers.
type Mode string

const (
	ModeBearer            Mode = "bearer"
	ModeBasic             Mode = "basic"
	ModeClientCredentials Mode = "oauth2_client_credentials"
	ModeAuthorizationCode Mode = "oauth2_authorization_code"
)

// Builder implements ports.HeaderProvider.
type Builder struct {
	client *http.Client
}

// NewBuilder creates a Builder. client is used for token requests; nil means
// http.DefaultClient.
func NewBuilder(client *http.Client) *Builder {
	return &Builder{client: client}
}

// DetectMode returns the first configured auth mode, checked in the order
// bearer, basic, client credentials, authorization code.
func DetectMode(jc ports.JobContext) (Mode, error) {
	switch {
	case jc.Secret(SecretBearerToken) != "":
		return ModeBearer, nil
	case jc.Secret(SecretBasicUsername) != "" && jc.Secret(SecretBasicPassword) != "":
		return ModeBasic, nil
	case jc.Secret(SecretClientCredentialsSecret) != "":
		return ModeClientCredentials, nil
	case jc.Secret(SecretAuthorizationCodeToken) != "":
		return ModeAuthorizationCode, nil
	default:
		return "", ErrNoCredentials
	}
}

// Headers returns JSON request headers carrying the Authorization value for
// the detected mode.
func (b *Builder) Headers(ctx context.Context, jc ports.JobContext) (http.Header, error) {
	mode, err := DetectMode(jc)
	if err != nil {
		return nil, err
	}

	var authorization string
	switch mode {
	case ModeBearer:
		authorization = bearer(jc.Secret(SecretBearerToken))
	case ModeBasic:
		creds := jc.Secret(SecretBasicUsername) + ":" + jc.Secret(SecretBasicPassword)
		authorization = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	case ModeClientCredentials:
		token, err := b.clientCredentialsToken(ctx, jc)
		if err != nil {
			return nil, err
		}
		authorization = bearer(token)
	case ModeAuthorizationCode:
		authorization = bearer(jc.Secret(SecretAuthorizationCodeToken))
	}

	h := http.Header{}
	h.Set("Authorization", authorization)
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	return h, nil
}

func (b *Builder) clientCredentialsToken(ctx context.Context, jc ports.JobContext) (string, error) {
	cfg, err := ClientCredentialsConfig(jc)
	if err != nil {
		return "", err
	}
	if b.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, b.client)
	}
	tok, err := cfg.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("auth: fetch client credentials token: %w", err)
	}
	return tok.AccessToken, nil
}

// ClientCredentialsConfig builds the OAuth2 client-credentials configuration
// from the job context.
func ClientCredentialsConfig(jc ports.JobContext) (*clientcredentials.Config, error) {
	clientID := jc.Env(EnvClientCredentialsClientID)
	tokenURL := jc.Env(EnvClientCredentialsTokenURL)
	if clientID == "" || tokenURL == "" {
		return nil, fmt.Errorf("%w: client id and token url are required for client credentials", ErrIncompleteCredentials)
	}

	style, err := parseAuthStyle(jc.Env(EnvClientCredentialsAuthStyle))
	if err != nil {
		return nil, err
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: jc.Secret(SecretClientCredentialsSecret),
		TokenURL:     tokenURL,
		Scopes:       strings.Fields(jc.Env(EnvClientCredentialsScope)),
		AuthStyle:    style,
	}
	if audience := jc.Env(EnvClientCredentialsAudience); audience != "" {
		cfg.EndpointParams = url.Values{"audience": []string{audience}}
	}
	return cfg, nil
}

func parseAuthStyle(s string) (oauth2.AuthStyle, error) {
	switch strings.ToLower(s) {
	case "", "autodetect", "auto_detect":
		return oauth2.AuthStyleAutoDetect, nil
	case "inparams", "in_params":
		return oauth2.AuthStyleInParams, nil
	case "inheader", "in_header":
		return oauth2.AuthStyleInHeader, nil
	default:
		return oauth2.AuthStyleAutoDetect, fmt.Errorf("auth: unknown auth style %q", s)
	}
}

func bearer(token string) string {
	return "Bearer " + token
}
