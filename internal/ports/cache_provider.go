package ports

// CacheStats holds monotonically increasing cache counters. Clearing the cache does not reset them.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Deletes int64 `json:"deletes"`
	Expired int64 `json:"expired"`
}

// CacheSnapshot is the cache read surface consumed by the admin view
type CacheSnapshot struct {
	Items int        `json:"items"`
	Stats CacheStats `json:"stats"`
}

// CacheInspector defines the contract for monitoring and flushing the request cache
type CacheInspector interface {
	Snapshot() CacheSnapshot
	Clear()
}
