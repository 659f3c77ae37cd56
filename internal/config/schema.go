package config

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// SchemaList is an ordered schema search path. In TOML and JSON it may be
// given either as a single name or as a list of names. A nil list means
// the field is absent.
type SchemaList []string

// UnmarshalTOML accepts a bare string or a list of strings.
func (s *SchemaList) UnmarshalTOML(v any) error {
	switch value := v.(type) {
	case string:
		*s = SchemaList{value}
	case []any:
		names := make(SchemaList, 0, len(value))

		for _, item := range value {
			name, ok := item.(string)
			if !ok {
				return errors.Errorf("schema entry %v is not a string", item)
			}

			names = append(names, name)
		}

		*s = names
	default:
		return errors.Errorf("schema must be a string or a list of strings, got %T", v)
	}

	return nil
}

// UnmarshalJSON accepts the same two shapes as UnmarshalTOML.
func (s *SchemaList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return errors.Wrap(err, "failed to decode schema")
		}

		*s = SchemaList{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Wrap(err, "failed to decode schema")
	}

	*s = list

	return nil
}

// SearchPath joins the schema names with commas, the form the server
// expects for the search_path setting. Individual names are not escaped.
func (s SchemaList) SearchPath() string {
	return strings.Join(s, ",")
}
