package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/models"
)

func testRecords() []models.VaultRecord {
	return []models.VaultRecord{
		{ID: "rec-1", Name: "bank card", Category: "card", UpdatedAt: 1769774400000},
		{ID: "rec-2", Name: "mail", Category: "login", Login: "user@example.com", Secret: "hunter2", UpdatedAt: 1769774400000},
	}
}

func TestListCmd_PrintsRecordsWithoutSecrets(t *testing.T) {
	session := &stubSession{unlocked: true, records: testRecords()}
	c, out := newTestCLI(session, &stubEngine{})

	require.NoError(t, runCommand(t, c, "list"))

	got := out.String()
	require.Contains(t, got, "rec-1")
	require.Contains(t, got, "bank card")
	require.Contains(t, got, "user@example.com")
	require.NotContains(t, got, "hunter2", "secrets never appear in listings")
}

func TestListCmd_EmptyVault(t *testing.T) {
	session := &stubSession{unlocked: true}
	c, out := newTestCLI(session, &stubEngine{})

	require.NoError(t, runCommand(t, c, "list"))
	require.Contains(t, out.String(), "vault is empty")
}

func TestListCmd_CategoryFilter(t *testing.T) {
	session := &stubSession{unlocked: true, records: testRecords()}
	c, out := newTestCLI(session, &stubEngine{})

	require.NoError(t, runCommand(t, c, "list", "--category", "card"))

	got := out.String()
	require.Contains(t, got, "bank card")
	require.NotContains(t, got, "mail")
}

func TestFilterByCategory_CaseInsensitive(t *testing.T) {
	filtered := filterByCategory(testRecords(), "CARD")

	require.Len(t, filtered, 1)
	require.Equal(t, "rec-1", filtered[0].ID)
}
