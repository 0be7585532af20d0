package app

import (
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string        // config directory, e.g. $HOME/.warpkey
	APIURL   string        // registration API base URL
	LogLevel string        // zerolog level name; empty means info
	Timeout  time.Duration // outbound HTTP timeout; 0 means 30s
	HTTP     *http.Client  // optional; overrides Timeout when set
}
