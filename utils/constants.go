// File: utils/constants.go
package utils

import "time"

// Keys of the durable per-user storage.
const (
	AppointmentsKey = "userAppointments"
	ProfileKey      = "userProfile"
)

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:token:"

// AuthRevokedPrefix marks tokens that were signed out before they expired.
const AuthRevokedPrefix = "auth:revoked:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour
