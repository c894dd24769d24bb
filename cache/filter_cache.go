package filter_cache

import (
	"sync"
	"time"

	"github.com/spacemen100/house-haven-market-sub000/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the aggregate price/area ranges and per-type counts that back the
// search filter panel. GetFilterMetadata reads from this.

type metaEntry struct {
	meta      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func Get() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.meta, true
	}
	return nil, false
}

func Set(meta *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{meta: meta, fetchedAt: time.Now()}
}

// ── Invalidate (call on any listing create/update/delete) ────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
