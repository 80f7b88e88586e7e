package db

// KVStore defines the minimal cache surface the app needs. All finder
// state lives in process, so the in-memory store is the only
// implementation; the interface keeps callers honest about what they
// touch.
type KVStore interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
}
