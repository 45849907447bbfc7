package utils

import "strings"

// NormalizeCode trims and uppercases identifier-like path parameters
// (crew codes, airport codes).
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
