// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ContentRequest caps a single round trip to the content store. The content
// client never retries, so this is the whole budget for one fetch.
const ContentRequest = 15 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
