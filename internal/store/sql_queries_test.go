// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectLatestEnvelopeQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()
	accountID := "acc-42"

	query, args, err := buildSelectLatestEnvelopeQuery(ctx, accountID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, accountID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from envelopes")
	require.Contains(t, q, "where")
	require.Contains(t, q, "account_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence (scan order columns)
	for _, col := range envelopeColumns {
		require.Contains(t, q, col)
	}

	// plain select must not lock the row
	require.NotContains(t, q, "for update")
}

func Test_buildSelectEnvelopeForUpdateQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectEnvelopeForUpdateQuery(ctx, "acc-42")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "acc-42", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from envelopes")
	require.Contains(t, q, "account_id")

	// the locking clause is the whole point of this builder
	require.True(t, strings.HasSuffix(strings.TrimSpace(q), "for update"),
		"query should end with FOR UPDATE, got: %s", query)
}

func Test_buildUpsertEnvelopeQuery(t *testing.T) {
	sealedAt := time.UnixMilli(1_700_000_111_222).UTC()

	envelope := models.EncryptedEnvelope{
		Ciphertext:   []byte("sealed-bytes"),
		IV:           []byte("nonce-123456"),
		Salt:         []byte("salt-value"),
		Version:      7,
		LastModified: sealedAt,
		IsOffline:    true,
	}

	tests := []struct {
		name       string
		accountID  string
		envelope   models.EncryptedEnvelope
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:      "success: full envelope with salt",
			accountID: "acc-42",
			envelope:  envelope,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "insert into envelopes")
				require.Contains(t, q, "on conflict (account_id) do update set")

				// every payload column is both inserted and updated
				for _, col := range envelopeColumns {
					assert.True(t, strings.Contains(q, col),
						"query should contain column %q", col)
					assert.True(t, strings.Contains(q, "excluded."+col),
						"update set should reference EXCLUDED.%s", col)
				}

				// seven placeholders, seven arguments, in column order
				require.Contains(t, query, "$7")
				require.Len(t, args, 7)
				require.Equal(t, "acc-42", args[0])
				require.Equal(t, []byte("sealed-bytes"), args[1])
				require.Equal(t, []byte("nonce-123456"), args[2])
				require.Equal(t, []byte("salt-value"), args[3])
				require.Equal(t, int64(7), args[4])
				require.Equal(t, sealedAt.UnixMilli(), args[5])
				require.Equal(t, true, args[6])
			},
		},
		{
			name:      "success: envelope without salt keeps placeholder count",
			accountID: "acc-42",
			envelope: models.EncryptedEnvelope{
				Ciphertext:   []byte("sealed-bytes"),
				IV:           []byte("nonce-123456"),
				Version:      1,
				LastModified: sealedAt,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				// salt stays in the column list; a nil argument becomes NULL
				require.Len(t, args, 7)
				require.Nil(t, args[3])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpsertEnvelopeQuery(context.Background(), tt.accountID, tt.envelope)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildSelectSaltQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectSaltQuery(context.Background(), "acc-42")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "acc-42", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select salt")
	require.Contains(t, q, "from account_salts")
	require.Contains(t, q, "account_id")
	require.Contains(t, query, "$1")
}

func Test_buildUpsertSaltQuery_SQLContainsParts(t *testing.T) {
	salt := []byte("fresh-salt")

	query, args, err := buildUpsertSaltQuery(context.Background(), "acc-42", salt)
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "acc-42", args[0])
	require.Equal(t, salt, args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into account_salts")
	require.Contains(t, q, "on conflict (account_id) do update set")
	require.Contains(t, q, "excluded.salt")
}
