package utils

import (
	"time"
)

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowUnix returns the current UTC time as Unix timestamp
func UTCNowUnix() int64 {
	return UTCNow().Unix()
}

// FromUnixMilli converts milliseconds since epoch to a UTC time
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
