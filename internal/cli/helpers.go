// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/service"
)

func success(msg string) string { return color.GreenString("✓") + " " + msg }
func failure(msg string) string { return color.RedString("✗") + " " + msg }
func hint(msg string) string    { return color.CyanString("→") + " " + msg }
func caution(msg string) string { return color.YellowString("!") + " " + msg }

// startSpinner shows a progress spinner on stderr while a command works.
// The returned cleanup stops it and prints FinalMSG to the CLI output
// stream, when set.
func (c *CLI) startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	cleanup := func() {
		final := s.FinalMSG
		s.FinalMSG = ""
		s.Stop()
		if final != "" {
			if !strings.HasSuffix(final, "\n") {
				final += "\n"
			}
			fmt.Fprint(c.out, final)
		}
	}

	return s, cleanup
}

// stdinIsTerminal reports whether an interactive prompt is possible.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readSecret prompts for a passphrase without echoing it. The prompt goes
// to stderr so stdout stays clean for command output.
func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}

	return string(secret), nil
}

// readNewSecret prompts for a fresh passphrase twice and requires the two
// entries to match. Empty passphrases are rejected: an empty secret is the
// keyring lookup sentinel and would unlock nothing.
func readNewSecret(prompt, confirmPrompt string) (string, error) {
	first, err := readSecret(prompt)
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", errors.New("passphrase must not be empty")
	}

	again, err := readSecret(confirmPrompt)
	if err != nil {
		return "", err
	}
	if first != again {
		return "", errors.New("passphrases do not match")
	}

	return first, nil
}

// ensureUnlocked brings the session to the unlocked state: the OS keyring
// first when remember-unlock is enabled, an interactive prompt otherwise.
func (c *CLI) ensureUnlocked(ctx context.Context) error {
	if c.session.Unlocked() {
		return nil
	}

	if c.cfg.App.RememberUnlock {
		err := c.session.Unlock(ctx, "")
		if err == nil {
			return nil
		}
		if !errors.Is(err, crypto.ErrAuthenticationFailed) {
			return err
		}
		// No remembered key, or a stale one after a rotation elsewhere.
	}

	secret, err := readSecret("Passphrase: ")
	if err != nil {
		return err
	}

	return c.session.Unlock(ctx, secret)
}

// friendlyError rewrites well-known failures into actionable one-liners.
// Unlock failures stay deliberately vague: a wrong passphrase and a
// corrupted vault are indistinguishable and must remain so.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return "incorrect passphrase or corrupted vault"
	case errors.Is(err, service.ErrVaultExists):
		return "a vault already exists here; unlock it instead, or remove the store file to start over"
	case errors.Is(err, service.ErrVaultNotFound):
		return "no vault found; create one with \"vault-sync init\""
	case errors.Is(err, service.ErrVaultLocked):
		return "vault is locked; run \"vault-sync unlock\" first"
	case errors.Is(err, service.ErrRecordNotFound):
		return err.Error() + "; \"vault-sync list\" shows the ids"
	case errors.Is(err, service.ErrSyncInProgress):
		return "another sync cycle is already running"
	case errors.Is(err, service.ErrUnresolvedConflict):
		return "conflicts remain; choose a resolution for every one of them and try again"
	default:
		return err.Error()
	}
}
