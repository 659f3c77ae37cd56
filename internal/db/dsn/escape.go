package dsn

import (
	"strings"
)

// escapeOptionValue renders one session option as a "-c name=value"
// fragment. Backslashes are doubled before spaces are escaped, otherwise
// the escape character of an already escaped space would be escaped a
// second time.
func escapeOptionValue(name, value string) string {
	v := strings.ReplaceAll(value, `\`, `\\`)
	v = strings.ReplaceAll(v, " ", `\ `)

	return "-c " + name + "=" + v
}

// escapeOptionClause wraps the space-joined option fragments into the
// quoted options clause. Backslashes are doubled before single quotes are
// escaped. An empty input yields no clause at all.
func escapeOptionClause(joined string) string {
	if joined == "" {
		return ""
	}

	s := strings.ReplaceAll(joined, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)

	return ";options='" + s + "'"
}

// optionsClause runs the encode, escape and join pipeline over the
// session options.
func optionsClause(opts []SessionOption) string {
	fragments := make([]string, 0, len(opts))
	for _, opt := range opts {
		fragments = append(fragments, escapeOptionValue(opt.Name, opt.Value))
	}

	return escapeOptionClause(strings.Join(fragments, " "))
}
