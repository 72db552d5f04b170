// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so the access-log middleware
// can observe the status code and the number of body bytes after the
// downstream handler returns. It never buffers the body itself; envelopes are
// opaque ciphertext and only their size is of any interest here.
//
// WriteHeader is forwarded to the underlying writer at most once, matching
// the contract of the standard library interface.
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call and stays zero until
	// either WriteHeader or an implicit header write via Write happens.
	status int

	// wroteHeader guards against forwarding a second WriteHeader downstream.
	wroteHeader bool

	// size accumulates body bytes across all Write calls.
	size int
}

// WriteHeader records statusCode and forwards it downstream exactly once.
// Repeated calls are ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer and adds the written byte count
// to size. A Write before any WriteHeader implies [http.StatusOK], same as
// the standard library behaviour.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
