// Package config provides configuration loading, merging, and validation
// facilities for the vault synchronizer.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags (server binary only)
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the client view. The client skips the flag source:
// its command-line surface belongs to the CLI layer, which overrides
// individual fields after loading.
package config
