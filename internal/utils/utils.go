package utils

import "time"

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}
