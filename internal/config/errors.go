package config

import (
	"errors"
)

var (
	// ErrDatabaseRequired is returned if config connection.database is empty.
	ErrDatabaseRequired = errors.New("toml config connection.database can not be empty")

	// ErrCharsetRequired is returned if config connection.charset is empty.
	ErrCharsetRequired = errors.New("toml config connection.charset can not be empty")
)
