package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// fetchVault answers GET /api/vault. The optional since query parameter
// carries the envelope version the caller already holds; when the stored
// envelope is not newer, the response reports up-to-date without a body.
func (h *Handler) fetchVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.fetchVault").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	sinceVersion, err := sinceParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchVault").Msg("malformed since parameter")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.EnvelopeService.FetchLatest(ctx, accountID, sinceVersion)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchVault").Msg("error fetching latest envelope")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// replaceVault answers PUT /api/vault. The envelope body is opaque to the
// authority: it is validated for shape, never decrypted.
func (h *Handler) replaceVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.replaceVault").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var request models.ReplaceVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.replaceVault").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.EnvelopeService.Replace(ctx, accountID, request.Envelope)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceVault").Msg("error replacing envelope")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// getSalt answers GET /api/vault/salt with the account's KDF salt, needed by
// a fresh device before it has cached any envelope.
func (h *Handler) getSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getSalt").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	salt, err := h.services.EnvelopeService.GetSalt(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSalt").Msg("error fetching account salt")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SaltResponse{Salt: salt}, http.StatusOK)
}

// sinceParam parses the optional since query parameter. Absent means zero:
// the caller wants the envelope unconditionally.
func sinceParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseInt(raw, 10, 64)
}
