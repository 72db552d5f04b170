// Package workers runs the client's background jobs: the continuous sync
// loop and the reachability probe that keeps the offline flag current
// between cycles. Workers are started together, share one context, and
// exit when it is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

// Worker is a long-running background job. Run blocks until ctx is
// cancelled; implementations own their scheduling (tickers, wake channels)
// internally.
type Worker interface {
	Run(ctx context.Context)
}

// SyncRunner runs one full synchronization cycle.
// Satisfied by service.SyncEngine.
type SyncRunner interface {
	SyncOnce(ctx context.Context) (models.SyncReport, error)
}

// ReachabilityProbe checks whether the sync authority answers at all,
// without moving envelope data. Satisfied by adapter.RemoteVault.
type ReachabilityProbe interface {
	Ping(ctx context.Context) error
}

// OnlineMarker reads and records the client's belief about authority
// reachability. Satisfied by store.LocalVaultStore.
type OnlineMarker interface {
	IsOnline() bool
	MarkOnline(online bool)
}
