// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the entry point contract the main package runs. Run executes
// one command invocation end to end and reports its failure, if any; the
// process exit code is derived from that error.
type Client interface {
	Run() error
}
