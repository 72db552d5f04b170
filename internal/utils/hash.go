package utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sync"

	"github.com/MKhiriev/go-vault-sync/models"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
// Conflict detection hashes every record of both replicas each cycle, so
// hasher reuse keeps GC pressure down on large vaults.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// fieldSep separates record fields inside the canonical hash input so that
// adjacent fields cannot be confused ("ab"+"c" vs "a"+"bc").
var fieldSep = []byte{0x1f}

// Hash computes a SHA-256 digest over the given byte slice using a hasher
// pulled from the package pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// RecordContentHash computes a canonical hex-encoded SHA-256 digest over the
// mutable content of a vault record.
//
// The identity (ID) and the timestamps are deliberately excluded: the hash
// answers "does this record carry the same content on both replicas", which
// is compared independently of when either side touched it.
func RecordContentHash(r models.VaultRecord) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	writeField := func(s string) {
		h.Write([]byte(s))
		h.Write(fieldSep)
	}

	writeField(r.Name)
	writeField(r.Login)
	writeField(r.Secret)
	writeField(r.URL)
	writeField(r.Notes)
	for _, label := range r.Labels {
		writeField(label)
	}
	writeField(r.Category)
	writeField(r.OTPSeed)
	for _, a := range r.Attachments {
		writeField(a.Name)
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(a.Content)))
		h.Write(size[:])
		h.Write(a.Content)
		h.Write(fieldSep)
	}

	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
