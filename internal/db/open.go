// Package db opens database sessions from connection descriptors with the
// gorm postgres driver.
package db

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pgdsn-tools/pgdsn/internal/config"
	"github.com/pgdsn-tools/pgdsn/internal/db/dsn"
)

// ErrBadDescriptor is returned when a descriptor does not carry the
// expected protocol tag.
var ErrBadDescriptor = errors.New("descriptor does not start with pgsql:")

// Keywords translates a pgsql descriptor into the keyword/value
// connection string the postgres driver consumes. Clauses are separated
// by ';' outside the quoted options value and joined with single spaces.
func Keywords(descriptor string) (string, error) {
	body, ok := strings.CutPrefix(descriptor, dsn.Protocol+":")
	if !ok {
		return "", ErrBadDescriptor
	}

	var (
		clauses []string
		current strings.Builder
		quoted  bool
		escaped bool
	)

	for _, r := range body {
		switch {
		case escaped:
			current.WriteRune(r)

			escaped = false
		case quoted && r == '\\':
			current.WriteRune(r)

			escaped = true
		case r == '\'':
			current.WriteRune(r)

			quoted = !quoted
		case r == ';' && !quoted:
			clauses = append(clauses, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		clauses = append(clauses, current.String())
	}

	return strings.Join(clauses, " "), nil
}

// keywordValue quotes a keyword value when it is empty or contains
// spaces, quotes or backslashes.
func keywordValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}

	v := strings.ReplaceAll(value, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)

	return "'" + v + "'"
}

// Open builds the descriptor from the configuration and opens a gorm
// session with the postgres driver. Credentials travel beside the
// descriptor, never inside it. Driver errors pass through wrapped, they
// are not reclassified.
func Open(cfg *config.Config) (*gorm.DB, error) {
	descriptor, err := dsn.Build(&cfg.Connection)
	if err != nil {
		return nil, err
	}

	kv, err := Keywords(descriptor)
	if err != nil {
		return nil, err
	}

	if cfg.Connection.User != nil {
		kv += " user=" + keywordValue(*cfg.Connection.User)
	}

	if cfg.Connection.Password != nil {
		kv += " password=" + keywordValue(*cfg.Connection.Password)
	}

	return open(postgres.Open(kv))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database session")
	}

	return gdb, nil
}
