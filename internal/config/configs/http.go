package configs

import (
	"fmt"
	"time"
)

// HTTP configures the operations API.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout is the grace period for in-flight requests and
	// running scheduler jobs once a termination signal arrives.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// ListenAddr returns the address passed to http.Server.
func (c HTTP) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
