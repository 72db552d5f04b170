package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	validators.ErrEmptyAccountID:  http.StatusBadRequest,
	validators.ErrEmptyCiphertext: http.StatusBadRequest,
	validators.ErrEmptyIV:         http.StatusBadRequest,
	validators.ErrInvalidVersion:  http.StatusBadRequest,

	store.ErrEnvelopeNotFound: http.StatusNotFound,
	store.ErrSaltNotFound:     http.StatusNotFound,
	store.ErrVersionConflict:  http.StatusConflict,
	store.ErrEnvelopeNotSaved: http.StatusInternalServerError,
	store.ErrStorageFailure:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// errorMessageMap fixes the response bodies clients key on. Synchronizers
// distinguish a missing envelope from a missing salt by these exact strings,
// so they are part of the wire contract, not just diagnostics.
var errorMessageMap = map[error]string{
	validators.ErrEmptyAccountID:  app.MsgNoAccountIDProvided,
	validators.ErrEmptyCiphertext: app.MsgInvalidEnvelope,
	validators.ErrEmptyIV:         app.MsgInvalidEnvelope,
	validators.ErrInvalidVersion:  app.MsgInvalidEnvelope,

	store.ErrEnvelopeNotFound: app.MsgEnvelopeNotFound,
	store.ErrSaltNotFound:     app.MsgSaltNotFound,
	store.ErrVersionConflict:  app.MsgVersionConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
