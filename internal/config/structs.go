package config

import (
	"github.com/pgdsn-tools/pgdsn/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	Connection Connection
	Log        logger.Log
}

// Redacted returns a copy of the config safe for dumping: the connection
// password is masked, everything else is unchanged.
func (c Config) Redacted() Config {
	if c.Connection.Password != nil {
		masked := "********"
		c.Connection.Password = &masked
	}

	return c
}
