package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/models"
)

func TestRenderSyncReport_TableTest(t *testing.T) {
	envelope := &models.EncryptedEnvelope{Version: 42}

	tests := []struct {
		name     string
		report   models.SyncReport
		expected string
	}{
		{
			name:     "up to date",
			report:   models.SyncReport{Decision: models.DecisionUpToDate},
			expected: "already up to date",
		},
		{
			name:     "local pushed",
			report:   models.SyncReport{Decision: models.DecisionUseLocal, Local: envelope},
			expected: "local envelope pushed (version 42)",
		},
		{
			name:     "push deferred",
			report:   models.SyncReport{Decision: models.DecisionUseLocal, Local: envelope, PushDeferred: true},
			expected: "push deferred",
		},
		{
			name:     "remote pulled",
			report:   models.SyncReport{Decision: models.DecisionUseRemote, Local: envelope},
			expected: "remote envelope pulled (version 42)",
		},
		{
			name:     "needs resolution",
			report:   models.SyncReport{Decision: models.DecisionNeedsResolution},
			expected: "vault-sync resolve",
		},
		{
			name:     "unavailable",
			report:   models.SyncReport{Decision: models.DecisionUnavailable},
			expected: "nothing to sync",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderSyncReport(tt.report), tt.expected)
		})
	}
}

func TestSyncCmd_RunsOneCycle(t *testing.T) {
	engine := &stubEngine{
		report: models.SyncReport{
			Decision: models.DecisionUpToDate,
			SyncedAt: time.Now(),
		},
	}
	c, out := newTestCLI(&stubSession{}, engine)

	require.NoError(t, runCommand(t, c, "sync"))

	require.Equal(t, 1, engine.calls)
	require.Contains(t, out.String(), "already up to date")
}

func TestSyncCmd_EngineErrorPropagates(t *testing.T) {
	engine := &stubEngine{err: errors.New("local store unavailable")}
	c, _ := newTestCLI(&stubSession{}, engine)

	err := runCommand(t, c, "sync")
	require.Error(t, err)
	require.Contains(t, err.Error(), "local store unavailable")
}
