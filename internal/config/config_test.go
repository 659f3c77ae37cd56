package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
[connection]
host = "db1"
database = "app"
port = 5432
charset = "UTF8"
schema = "public"
application_name = "pgdsn"
user = "alice"
password = "secret"

[log]
loglevel = "info"
servicename = "pgdsn"

[log.console]
enabled = true
`

func writeConfigDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir() + string(filepath.Separator)
	if err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	return dir
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfigDir(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Connection.Database != "app" {
		t.Errorf("Connection.Database = %q, want %q", cfg.Connection.Database, "app")
	}

	if cfg.Connection.Charset != "UTF8" {
		t.Errorf("Connection.Charset = %q, want %q", cfg.Connection.Charset, "UTF8")
	}

	if cfg.Connection.Host == nil || *cfg.Connection.Host != "db1" {
		t.Errorf("Connection.Host = %v, want db1", cfg.Connection.Host)
	}

	if cfg.Connection.Port == nil || *cfg.Connection.Port != 5432 {
		t.Errorf("Connection.Port = %v, want 5432", cfg.Connection.Port)
	}

	// a bare string schema becomes a single-entry list
	if len(cfg.Connection.Schema) != 1 || cfg.Connection.Schema[0] != "public" {
		t.Errorf("Connection.Schema = %v, want [public]", cfg.Connection.Schema)
	}

	if cfg.Connection.TimeZone != nil {
		t.Errorf("Connection.TimeZone = %v, want absent", cfg.Connection.TimeZone)
	}

	if cfg.Log.LogLevel != "info" {
		t.Errorf("Log.LogLevel = %q, want %q", cfg.Log.LogLevel, "info")
	}
}

func TestReadConfigSchemaList(t *testing.T) {
	content := `
[connection]
database = "app"
charset = "UTF8"
schema = ["audit", "public"]
`

	cfg, err := ReadConfig(writeConfigDir(t, content))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if len(cfg.Connection.Schema) != 2 ||
		cfg.Connection.Schema[0] != "audit" ||
		cfg.Connection.Schema[1] != "public" {
		t.Errorf("Connection.Schema = %v, want [audit public]", cfg.Connection.Schema)
	}
}

func TestReadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "missing database",
			content: `
[connection]
charset = "UTF8"
`,
			wantErr: ErrDatabaseRequired,
		},
		{
			name: "missing charset",
			content: `
[connection]
database = "app"
`,
			wantErr: ErrCharsetRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfig(writeConfigDir(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Connection":{"database":"override","charset":"LATIN1","schema":["x","y"]}}`
	t.Setenv(EnvJSONOverride, jsonOverride)

	cfg, err := ReadConfig(writeConfigDir(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Connection.Database != "override" {
		t.Errorf("Connection.Database = %q, want %q", cfg.Connection.Database, "override")
	}

	if cfg.Connection.Charset != "LATIN1" {
		t.Errorf("Connection.Charset = %q, want %q", cfg.Connection.Charset, "LATIN1")
	}

	if len(cfg.Connection.Schema) != 2 || cfg.Connection.Schema[0] != "x" {
		t.Errorf("Connection.Schema = %v, want [x y]", cfg.Connection.Schema)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Connection: Connection{
					Database: "app",
					Charset:  "UTF8",
				},
			},
		},
		{
			name: "missing database",
			config: Config{
				Connection: Connection{
					Charset: "UTF8",
				},
			},
			wantErr: ErrDatabaseRequired,
		},
		{
			name: "missing charset",
			config: Config{
				Connection: Connection{
					Database: "app",
				},
			},
			wantErr: ErrCharsetRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.config)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDumpConfigRedactsPassword(t *testing.T) {
	password := "secret"
	cfg := Config{
		Connection: Connection{
			Database: "app",
			Charset:  "UTF8",
			Password: &password,
		},
	}

	tomlStr, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if strings.Contains(tomlStr, "secret") {
		t.Error("DumpConfig() output must not contain the password")
	}

	if !strings.Contains(tomlStr, "********") {
		t.Error("DumpConfig() output should contain the redaction mask")
	}

	if !strings.Contains(tomlStr, "app") {
		t.Error("DumpConfig() output should contain the database name")
	}

	// the original config is untouched
	if *cfg.Connection.Password != "secret" {
		t.Errorf("DumpConfig() mutated the config password: %q", *cfg.Connection.Password)
	}
}

func TestDumpConfigJSON(t *testing.T) {
	password := "secret"
	cfg := Config{
		DevMode: true,
		Connection: Connection{
			Database: "app",
			Charset:  "UTF8",
			Schema:   SchemaList{"public"},
			Password: &password,
		},
	}

	jsonStr, err := DumpConfigJSON(cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonStr == "" {
		t.Error("DumpConfigJSON() returned empty string")
	}

	if strings.Contains(jsonStr, "secret") {
		t.Error("DumpConfigJSON() output must not contain the password")
	}

	if !strings.Contains(jsonStr, "app") {
		t.Error("DumpConfigJSON() output should contain the database name")
	}
}
