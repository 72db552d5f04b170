package server

// Server is the lifecycle contract shared by the authority's transports.
//
// RunServer blocks until a stop signal arrives or the transport fails;
// Shutdown drains in-flight requests and releases listeners. Both are safe
// to call on an aggregate that runs several transports at once.
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees its resources.
	Shutdown()
}
