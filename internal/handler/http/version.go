package http

import (
	"net/http"
)

// getServerVersion reports the authority's build version as plain text.
// The route is deliberately open: clients probe it before authenticating to
// spot an incompatible authority early.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
