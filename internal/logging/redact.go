package logging

import "strings"

// secretKeyPatterns are matched case-insensitively against attribute keys.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes mark a value as sensitive regardless of its key.
var tokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghu_",
	"ghs_",
	"ghr_",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
}

// ShouldMask returns true if the key name suggests it holds sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue hides all but the last four characters of value.
// Values of four characters or fewer are fully masked.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// Redact masks value when either its key or its content looks secret.
func Redact(key, value string) string {
	if ShouldMask(key) || ContainsTokenPrefix(value) {
		return MaskValue(value)
	}
	return value
}
