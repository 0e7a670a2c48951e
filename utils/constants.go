// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SessionCachePrefix is the prefix for derived session identity entries.
const SessionCachePrefix = "session:"

// AgendaCachePrefix is the prefix for cached nutritionist agenda availability.
const AgendaCachePrefix = "agenda:"

// AgendaCacheTTL bounds staleness of cached availability between bookings.
const AgendaCacheTTL = 2 * time.Minute
