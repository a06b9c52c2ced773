package txcache

import "errors"

// ErrCorrupt is returned when the cache file exists but cannot be
// parsed as JSON. The cache is tooling state, not untrusted input, so
// this is treated as fatal rather than recoverable.
var ErrCorrupt = errors.New("txcache: cache file is not valid JSON")
