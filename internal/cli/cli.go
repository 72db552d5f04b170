// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the vault-sync command-line interface.
//
// The CLI is a thin shell over the client services: it prompts, renders and
// delegates. Key derivation, sealing, persistence and synchronisation all
// live in the service layer; no command touches an envelope or a key
// directly.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
)

// CLI holds the wired client services and the streams commands talk to.
// Streams are fields so tests can capture output and feed prompts.
type CLI struct {
	session   service.VaultSession
	engine    service.SyncEngine
	conflicts service.ConflictService
	workers   *workers.Workers

	cfg    config.ClientConfig
	logger *logger.Logger

	in  io.Reader
	out io.Writer
}

// New assembles the command-line interface over the given services and
// background workers.
func New(services *service.ClientServices, background *workers.Workers, cfg config.ClientConfig, logger *logger.Logger) *CLI {
	return &CLI{
		session:   services.Session,
		engine:    services.SyncEngine,
		conflicts: services.Conflicts,
		workers:   background,
		cfg:       cfg,
		logger:    logger,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// Execute runs the command named on the command line and blocks until it
// finishes. Errors are rendered to stderr here; the caller only turns the
// returned error into an exit code.
func (c *CLI) Execute(ctx context.Context) error {
	err := c.rootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, failure(friendlyError(err)))
	}

	return err
}

func (c *CLI) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vault-sync",
		Short: "Zero-knowledge encrypted vault with offline-first sync",
		Long: `vault-sync keeps an encrypted secrets vault on this machine and
synchronizes it with a remote authority that only ever sees ciphertext.

The vault is sealed with a key derived from your passphrase. The
passphrase, the derived key and the decrypted records never leave this
process, and the authority cannot read what it stores.

Configuration comes from environment variables (ADAPTER_ADDRESS,
APP_ACCOUNT_ID, APP_TOKEN, ...) or a JSON file named by CONFIG.`,
		Version:       c.cfg.App.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.initCmd(),
		c.unlockCmd(),
		c.lockCmd(),
		c.statusCmd(),
		c.syncCmd(),
		c.watchCmd(),
		c.listCmd(),
		c.getCmd(),
		c.copyCmd(),
		c.putCmd(),
		c.removeCmd(),
		c.rotateCmd(),
		c.resolveCmd(),
	)

	return root
}
