package browser

import "errors"

// ErrInvalidCacheSize is returned for a negative cache size.
var ErrInvalidCacheSize = errors.New("browser: cache size must not be negative")
