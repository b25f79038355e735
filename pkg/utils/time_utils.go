package utils

import "time"

// NowUTC is the clock used for handler-stamped timestamps.
func NowUTC() time.Time { return time.Now().UTC() }
