package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// signedToken mints a token for the given account, issuer and key. Negative
// durations produce an already-expired token.
func signedToken(t *testing.T, issuer, accountID string, duration time.Duration, signKey string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, accountID, duration, signKey)
	require.NoError(t, err)
	return token.SignedString
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts: second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     func(t *testing.T) string
		expectedStatus int
		nextCalled     bool
		wantAccountID  string
	}{
		{
			name:           "empty Authorization header",
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid header format (no space)",
			authHeader:     func(t *testing.T) string { return "BearerTokenWithoutSpace" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token: next called, account ID in context",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, "acc-42", time.Hour, testSignKey)
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantAccountID:  "acc-42",
		},
		{
			name: "expired token",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, "acc-42", -time.Hour, testSignKey)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token signed with a different key",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, testIssuer, "acc-42", time.Hour, "some-other-key")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token from a different issuer",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, "rogue-issuer", "acc-42", time.Hour, testSignKey)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     func(t *testing.T) string { return "Bearer not.a.jwt" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithEnvelopeService(&mockEnvelopeSvc{})

			nextCalled := false
			var capturedAccountID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedAccountID = r.Context().Value(utils.AccountIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader(t), next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled && tt.wantAccountID != "" {
				assert.Equal(t, tt.wantAccountID, capturedAccountID)
			}
		})
	}
}

// ---- Error response bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithEnvelopeService(&mockEnvelopeSvc{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("expired token error body", func(t *testing.T) {
		expired := "Bearer " + signedToken(t, testIssuer, "acc-1", -time.Hour, testSignKey)
		rr := executeAuth(h, expired, next)
		assert.Contains(t, rr.Body.String(), app.MsgTokenIsExpiredOrInvalid)
	})
}

// ---- Account ID is correctly placed into the context ----

func TestAuth_AccountIDInContext(t *testing.T) {
	const expectedAccountID = "acc-99"

	h := newHandlerWithEnvelopeService(&mockEnvelopeSvc{})

	var gotAccountID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccountID = r.Context().Value(utils.AccountIDCtxKey)
		w.WriteHeader(http.StatusOK)
	})

	header := "Bearer " + signedToken(t, testIssuer, expectedAccountID, time.Hour, testSignKey)
	rr := executeAuth(h, header, next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, expectedAccountID, gotAccountID)
}

// ---- The original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithEnvelopeService(&mockEnvelopeSvc{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testIssuer, "acc-1", time.Hour, testSignKey))
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithEnvelopeService(&mockEnvelopeSvc{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	header := "Bearer " + signedToken(t, testIssuer, "acc-7", time.Hour, testSignKey)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", header)
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
