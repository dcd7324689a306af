package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial PING.
	DefaultConnectTimeout = 5 * time.Second
)
