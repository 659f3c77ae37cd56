package dsn

import (
	"github.com/pgdsn-tools/pgdsn/internal/config"
)

// SessionOption is one server-side setting applied at session start.
type SessionOption struct {
	Name  string
	Value string
}

// sessionOptions collects the session options in their fixed order:
// client_encoding, timezone, search_path, application_name. The order is
// visible in the final descriptor and must not change.
func sessionOptions(conn *config.Connection) []SessionOption {
	opts := []SessionOption{
		{Name: "client_encoding", Value: conn.Charset},
	}

	if conn.TimeZone != nil {
		opts = append(opts, SessionOption{Name: "timezone", Value: *conn.TimeZone})
	}

	if conn.Schema != nil {
		opts = append(opts, SessionOption{Name: "search_path", Value: conn.Schema.SearchPath()})
	}

	if conn.ApplicationName != nil {
		opts = append(opts, SessionOption{Name: "application_name", Value: *conn.ApplicationName})
	}

	return opts
}
