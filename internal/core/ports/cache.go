package ports

import "orders/internal/core/domain/model/kernel"

// ActiveOrdersCacheKey is the cache entry holding the active-orders listing.
const ActiveOrdersCacheKey = "orders"

// OrderCacheKey returns the cache key for a single order's entry. The
// per-order key and the listing key are independent entries; one mutation
// may need to invalidate both.
func OrderCacheKey(id kernel.UUID) string {
	return "order_" + id.String()
}

// Cache is the injected read-through cache capability. Entries expire after
// the TTL fixed at construction; mutating code paths must Remove the keys
// they could have made stale before returning to the caller.
//
// No atomicity is guaranteed across calls: a racing Set may clobber a newer
// value with a staler one, which the TTL bounds.
type Cache interface {
	// Get returns the entry stored under key, or false on a miss.
	Get(key string) (any, bool)

	// Set stores value under key until the TTL elapses or the key is
	// removed.
	Set(key string, value any)

	// Remove invalidates the entry under key. Removing an absent key is
	// a no-op.
	Remove(key string)
}
