package browser

// Config holds detector settings loaded from the environment.
type Config struct {
	// CacheSize bounds the number of memoized User-Agent strings. Zero
	// disables the cache.
	CacheSize int `env:"UA_CACHE_SIZE" envDefault:"1024"`
}
