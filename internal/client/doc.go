// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the client application runtime.
//
// It wires configuration, the local envelope store, the remote vault
// adapter, client services, background synchronization workers and the
// command-line interface into a single process lifecycle.
package client
