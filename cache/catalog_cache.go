package catalog_cache

import (
	"sync"
	"time"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Product snapshot cache ───────────────────────────────────────────────────
// The filter engine runs over an in-memory snapshot of active products; the
// storefront handlers fetch it once per TTL window instead of per request.

type snapshotEntry struct {
	products  []models.ProductSummary
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() ([]models.ProductSummary, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.products, true
	}
	return nil, false
}

func SetSnapshot(products []models.ProductSummary) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{products: products, fetchedAt: time.Now()}
}

// ── Filter metadata cache ────────────────────────────────────────────────────
// Keyed by nothing: the global (unscoped) metadata is by far the hottest
// request, scoped variants are computed per call from the snapshot.

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return nil, false
}

func SetMetadata(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any product create/update/delete) ─────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()

	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
