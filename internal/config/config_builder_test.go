package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source failed")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
	assert.Contains(t, err.Error(), "source failed")
}

// TestBuild_MergePriority verifies that earlier sources win: a field set by
// the first config is not overwritten by later ones, while fields the first
// config leaves empty are filled in.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{AccountID: "env-account"},
			Storage: Storage{Local: Local{Path: "/env/vault.db"}},
		},
		&StructuredConfig{
			App:     App{AccountID: "json-account", TokenIssuer: "json-issuer"},
			Storage: Storage{Local: Local{Backend: "bolt"}},
			Workers: Workers{SyncInterval: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// first source wins on overlap
	assert.Equal(t, "env-account", cfg.App.AccountID)
	assert.Equal(t, "/env/vault.db", cfg.Storage.Local.Path)

	// later sources fill the gaps
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "bolt", cfg.Storage.Local.Backend)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_UsesPathFromEarlierSources verifies that withJSON picks up the
// JSON file path recorded by an already loaded source.
func TestWithJSON_UsesPathFromEarlierSources(t *testing.T) {
	path := writeTempFile(t, `{"app": {"token_issuer": "from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenIssuer)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// source specified a JSON file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that a dangling JSON path turns
// into a builder error surfaced by build.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── withJSONFile ──────────────────────────────────────────────────────────────

// TestWithJSONFile_ExplicitPath verifies that an explicit path is loaded
// without consulting earlier sources.
func TestWithJSONFile_ExplicitPath(t *testing.T) {
	path := writeTempFile(t, `{"adapter": {"http_address": "https://vault.example.com"}}`)

	cfg, err := newConfigBuilder().withJSONFile(path).build()

	require.NoError(t, err)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
}

// TestWithJSONFile_EmptyPathFallsBack verifies that an empty explicit path
// defers to the withJSON resolution logic.
func TestWithJSONFile_EmptyPathFallsBack(t *testing.T) {
	path := writeTempFile(t, `{"app": {"token_issuer": "fallback"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSONFile("").build()

	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.App.TokenIssuer)
}
