// Package dsn builds PDO-style PostgreSQL connection descriptors from the
// connection configuration. A descriptor is a pure function of its input:
// identical configurations yield byte-identical strings.
package dsn

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/pgdsn-tools/pgdsn/internal/config"
)

// Protocol is the descriptor's protocol tag.
const Protocol = "pgsql"

// Build assembles the connection descriptor from the configuration.
// Base clauses appear in a fixed order (host, dbname, port, TLS fields),
// followed by at most one quoted options clause carrying the session
// options. A missing required field fails before any string is built.
func Build(conn *config.Connection) (string, error) {
	if err := conn.Validate(); err != nil {
		return "", errors.Wrap(err, "invalid connection config")
	}

	var b strings.Builder

	b.WriteString(Protocol + ":")

	if conn.Host != nil {
		fmt.Fprintf(&b, "host=%s;", *conn.Host)
	}

	fmt.Fprintf(&b, "dbname=%s", conn.Database)

	if conn.Port != nil {
		fmt.Fprintf(&b, ";port=%d", *conn.Port)
	}

	// TLS parameters are passed through unescaped, see the package tests
	// for the fixed clause order.
	for _, tls := range []struct {
		key   string
		value *string
	}{
		{"sslmode", conn.SSLMode},
		{"sslcert", conn.SSLCert},
		{"sslkey", conn.SSLKey},
		{"sslrootcert", conn.SSLRootCert},
	} {
		if tls.value != nil {
			fmt.Fprintf(&b, ";%s=%s", tls.key, *tls.value)
		}
	}

	b.WriteString(optionsClause(sessionOptions(conn)))

	return b.String(), nil
}
