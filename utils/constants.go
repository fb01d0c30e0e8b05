package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 1 * time.Hour

// RoomLockPrefix is the prefix for per-room admission locks in Redis.
const RoomLockPrefix = "roomlock:"

// RoomLockTTL bounds how long a crashed holder can keep a room locked.
const RoomLockTTL = 10 * time.Second
