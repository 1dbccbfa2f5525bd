package env

import (
	"regexp"
	"strings"
)

func IsEmpty(value string) bool {
	return value == ""
}

// Sui address or object ID: 0x prefix followed by at least one hex byte.
// Full 32-byte IDs are the common case but short forms like 0x6 (the
// shared clock) are valid on chain, so only the syntax is checked here.
func IsValidSuiObjectID(id string) bool {
	matched, _ := regexp.MatchString("^0x[0-9a-fA-F]+$", id)
	return matched
}

// Move type tag of the form <package>::<module>::<Name>
func IsValidTypeTag(tag string) bool {
	parts := strings.Split(tag, "::")
	if len(parts) != 3 {
		return false
	}
	if !IsValidSuiObjectID(parts[0]) {
		return false
	}
	return parts[1] != "" && parts[2] != ""
}

// Port number
func IsValidPort(port string) bool {
	matched, _ := regexp.MatchString("^(102[4-9]|10[3-9][0-9]|1[1-9][0-9]{2}|[2-9][0-9]{3}|[1-5][0-9]{4}|6[0-4][0-9]{3}|65[0-4][0-9]{2}|655[0-2][0-9]|6553[0-5])$", port)
	return matched
}

// URL
func IsValidURL(url string) bool {
	if url == "" {
		return false
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
