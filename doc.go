// Package main provides the entry point for the pgdsn command line tool.
// It builds PDO-style PostgreSQL connection descriptors from a TOML
// configuration, exposes the driver-level session attributes that travel
// beside a descriptor, and can open a session against the configured
// server to verify a descriptor end to end. Descriptor construction and
// its escaping rules live in internal/db/dsn; session opening uses gorm
// with the postgres driver.
package main
