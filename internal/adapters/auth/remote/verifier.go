// Package remote implementa auth.AuthVerifier contra un servicio externo de identidad.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cats-api/internal/platform/httpclient"
	"cats-api/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("remote verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("token rejected")
	ErrUpstream      = errors.New("identity service error")
)

const DefaultAPIKeyHeader = "X-Api-Key"

type Config struct {
	// VerifyURL es la URL completa del endpoint de verificación (POST).
	VerifyURL string
	APIKey    string

	// Si está vacío se usa DefaultAPIKeyHeader.
	APIKeyHeader string
	Timeout      time.Duration
}

type Verifier struct {
	verifyURL    string
	apiKey       string
	apiKeyHeader string
	client       *httpclient.Client
}

func NewVerifier(cfg Config) *Verifier {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}
	return &Verifier{
		verifyURL:    strings.TrimSpace(cfg.VerifyURL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		client:       httpclient.New(cfg.Timeout),
	}
}

func (v *Verifier) IsConfigured() bool {
	return v != nil && v.verifyURL != "" && v.apiKey != ""
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Verify manda el token al servicio y devuelve los claims (user_id, role).
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if !v.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	headers := map[string]string{
		v.apiKeyHeader:  v.apiKey,
		"Authorization": "Bearer " + token,
	}

	var out verifyResponse
	err := v.client.DoJSON(ctx, http.MethodPost, v.verifyURL, headers, verifyRequest{Token: token}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if out.UserID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.UserID,
		Role:   strings.TrimSpace(out.Role),
	}, nil
}
