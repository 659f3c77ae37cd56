package db

// Driver attribute names applied beside the descriptor when a session is
// opened. They are opaque to the descriptor builder and handed to the
// driver untouched.
const (
	AttrErrorMode        = "error_mode"
	AttrCaseFolding      = "case_folding"
	AttrNullHandling     = "null_handling"
	AttrStringifyFetches = "stringify_fetches"
)

// DriverOptions returns the fixed driver-level session attributes that
// accompany every descriptor. A fresh map is returned on each call.
func DriverOptions() map[string]string {
	return map[string]string{
		AttrErrorMode:        "exception",
		AttrCaseFolding:      "natural",
		AttrNullHandling:     "natural",
		AttrStringifyFetches: "false",
	}
}
