// Package server runs the vault authority's transport servers.
//
// The HTTP server carries the envelope API; a gRPC server can run next to it
// for health probes. The package owns startup, signal handling and graceful
// shutdown of whichever transports the configuration enables.
package server
