package schema

import "encoding/json"

// Secret wraps sensitive configuration values so they are masked
// whenever the configuration is logged or serialized
type Secret string

// String returns a masked representation safe for logs
func (s Secret) String() string {
	if len(s) == 0 {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return string(s[:2]) + "****" + string(s[len(s)-2:])
}

// Value returns the actual secret value
func (s Secret) Value() string {
	return string(s)
}

// IsEmpty returns true if no value is set
func (s Secret) IsEmpty() bool {
	return len(s) == 0
}

// MarshalJSON implements json.Marshaler with masking
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler with masking
func (s Secret) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
