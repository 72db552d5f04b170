// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Schema and queries for the client-side SQLite store. The envelopes table
// is constrained to a single row: the whole vault is one sealed blob, and
// put replaces it wholesale.
const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS envelopes (
			id            INTEGER PRIMARY KEY CHECK (id = 1),
			ciphertext    BLOB    NOT NULL,
			iv            BLOB    NOT NULL,
			salt          BLOB,
			version       INTEGER NOT NULL,
			last_modified INTEGER NOT NULL,
			is_offline    INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS sync_meta (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);`

	putLocalEnvelope = `
		INSERT INTO envelopes (
			id,
			ciphertext,
			iv,
			salt,
			version,
			last_modified,
			is_offline
		) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			ciphertext    = excluded.ciphertext,
			iv            = excluded.iv,
			salt          = excluded.salt,
			version       = excluded.version,
			last_modified = excluded.last_modified,
			is_offline    = excluded.is_offline;`

	getLocalEnvelope = `
		SELECT
			ciphertext,
			iv,
			salt,
			version,
			last_modified,
			is_offline
		FROM envelopes
		WHERE id = 1;`

	putSyncMeta = `
		INSERT INTO sync_meta (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getSyncMeta = `
		SELECT value FROM sync_meta WHERE key = ?;`
)
