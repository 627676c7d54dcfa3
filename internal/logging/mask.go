package logging

import (
	"strings"
)

const (
	// MaskChar is the character used for masking.
	MaskChar = "*"
	// maxMaskLength caps how many mask characters a value turns into, so
	// the mask does not reveal the secret's length.
	maxMaskLength = 8
)

// SensitiveFields contains field names that should be masked.
var SensitiveFields = map[string]bool{
	"password":      true,
	"password_hash": true,
	"passwordhash":  true,
	"secret":        true,
	"token":         true,
	"credential":    true,
	"credentials":   true,
}

// MaskValue masks a sensitive value completely.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	return strings.Repeat(MaskChar, min(len(value), maxMaskLength))
}

// IsSensitiveField checks if a field name indicates sensitive data.
func IsSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)

	if SensitiveFields[lower] {
		return true
	}

	for keyword := range SensitiveFields {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// MaskArgs masks sensitive values in a slice of logging arguments.
// Arguments are expected in key-value pairs: key1, value1, key2, value2, ...
func MaskArgs(args []any) []any {
	if len(args) < 2 {
		return args
	}

	result := make([]any, len(args))
	copy(result, args)

	for i := 0; i < len(result)-1; i += 2 {
		key, ok := result[i].(string)
		if !ok || !IsSensitiveField(key) {
			continue
		}
		if strVal, ok := result[i+1].(string); ok {
			result[i+1] = MaskValue(strVal)
		} else {
			result[i+1] = strings.Repeat(MaskChar, maxMaskLength)
		}
	}

	return result
}

// MaskMap returns a copy of m with sensitive values masked.
func MaskMap(m map[string]string) map[string]string {
	result := make(map[string]string, len(m))
	for key, value := range m {
		if IsSensitiveField(key) {
			result[key] = MaskValue(value)
		} else {
			result[key] = value
		}
	}
	return result
}
