package http

import (
	"net/http"
)

// ping is the unauthenticated reachability probe. Clients call it before any
// token is configured to decide whether to run in online or offline mode.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
