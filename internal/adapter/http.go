package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteVault struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteVault constructs an HTTP/REST implementation of [RemoteVault].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and the
// request timeout that bounds every remote call, and seeds the bearer token
// from appCfg.Token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteVault(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (RemoteVault, error) {
	log.Debug().Str("func", "NewHTTPRemoteVault").Msg("creating http remote vault adapter")

	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	vault := &httpRemoteVault{client: client, logger: log}
	vault.SetToken(appCfg.Token)

	return vault, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteVault]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteVault) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteVault]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpRemoteVault) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchLatest implements [RemoteVault]. It GETs /api/vault with sinceVersion
// in the since query parameter (omitted when sinceVersion is not positive).
// An HTTP 404 means the authority holds nothing for the account and is
// reported as Exists=false rather than as an error, so first-ever syncs do
// not look like failures.
func (h *httpRemoteVault) FetchLatest(ctx context.Context, sinceVersion int64) (models.FetchVaultResponse, error) {
	req := h.authedRequest(ctx)
	if sinceVersion > 0 {
		req.SetQueryParam("since", strconv.FormatInt(sinceVersion, 10))
	}

	resp, err := req.Get("/api/vault")
	if err != nil {
		return models.FetchVaultResponse{}, fmt.Errorf("%w: fetch latest: %w", ErrRemoteUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.FetchVaultResponse{Exists: false}, nil
		}
		return models.FetchVaultResponse{}, err
	}

	var fetched models.FetchVaultResponse
	if err = json.Unmarshal(resp.Body(), &fetched); err != nil {
		return models.FetchVaultResponse{}, fmt.Errorf("decode fetch latest response: %w", err)
	}

	return fetched, nil
}

// Replace implements [RemoteVault]. It PUTs the envelope to /api/vault and
// decodes the authority's acknowledgement. Returns [ErrVersionConflict]
// (wrapped) on HTTP 409 and [ErrRemoteRejected] (wrapped) when the authority
// refuses the envelope as malformed.
func (h *httpRemoteVault) Replace(ctx context.Context, envelope models.EncryptedEnvelope) (models.ReplaceVaultResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ReplaceVaultRequest{Envelope: envelope}).
		Put("/api/vault")
	if err != nil {
		return models.ReplaceVaultResponse{}, fmt.Errorf("%w: replace: %w", ErrRemoteUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReplaceVaultResponse{}, err
	}

	var replaced models.ReplaceVaultResponse
	if err = json.Unmarshal(resp.Body(), &replaced); err != nil {
		return models.ReplaceVaultResponse{}, fmt.Errorf("decode replace response: %w", err)
	}

	return replaced, nil
}

// GetSalt implements [RemoteVault]. It GETs /api/vault/salt and returns the
// raw salt bytes. Returns [ErrNotFound] (wrapped) when no salt is stored for
// the account.
func (h *httpRemoteVault) GetSalt(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/salt")
	if err != nil {
		return nil, fmt.Errorf("%w: get salt: %w", ErrRemoteUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var salt models.SaltResponse
	if err = json.Unmarshal(resp.Body(), &salt); err != nil {
		return nil, fmt.Errorf("decode salt response: %w", err)
	}

	return salt.Salt, nil
}

// Ping implements [RemoteVault]. It GETs the unauthenticated /ping endpoint.
func (h *httpRemoteVault) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrRemoteUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteVault) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
