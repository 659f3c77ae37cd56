package config

// Connection holds the settings a connection descriptor is built from.
// Required fields are plain strings; optional fields are pointers so an
// absent field is distinguishable from an empty value.
type Connection struct {
	Host            *string    `toml:"host,omitempty" json:"host,omitempty"`
	Database        string     `toml:"database" json:"database"`
	Port            *int       `toml:"port,omitempty" json:"port,omitempty"`
	Charset         string     `toml:"charset" json:"charset"`
	TimeZone        *string    `toml:"timezone,omitempty" json:"timezone,omitempty"`
	Schema          SchemaList `toml:"schema,omitempty" json:"schema,omitempty"`
	ApplicationName *string    `toml:"application_name,omitempty" json:"application_name,omitempty"`

	// TLS parameters are raw passthrough into the descriptor, in this order.
	SSLMode     *string `toml:"sslmode,omitempty" json:"sslmode,omitempty"`
	SSLCert     *string `toml:"sslcert,omitempty" json:"sslcert,omitempty"`
	SSLKey      *string `toml:"sslkey,omitempty" json:"sslkey,omitempty"`
	SSLRootCert *string `toml:"sslrootcert,omitempty" json:"sslrootcert,omitempty"`

	// Credentials travel beside the descriptor when the session is opened,
	// they are never part of the descriptor string itself.
	User     *string `toml:"user,omitempty" json:"user,omitempty"`
	Password *string `toml:"password,omitempty" json:"password,omitempty"`
}

// Validate checks presence of the required fields. Values are not
// inspected beyond presence.
func (c *Connection) Validate() error {
	if c.Database == "" {
		return ErrDatabaseRequired
	}

	if c.Charset == "" {
		return ErrCharsetRequired
	}

	return nil
}
