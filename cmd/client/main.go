package main

import (
	"os"

	"github.com/MKhiriev/go-vault-sync/internal/client"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// Populated at link time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("vault-sync-client")

	if buildVersion == "" {
		buildVersion = "N/A"
	}
	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting client")

	app, err := client.NewApp(buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	// Command errors are already rendered by the CLI; only the exit code
	// is left to set here.
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
