// Package http implements the vault authority's HTTP API.
//
// It wires the routes clients rely on (envelope fetch and store, salt
// retrieval, reachability and version probes) and the middleware that runs
// in front of them: bearer-token authentication, trace-id propagation,
// access logging and gzip compression. Handlers never look inside an
// envelope; payloads stay opaque ciphertext on their way to the service
// layer.
package http
