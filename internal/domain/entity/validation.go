package entity

import (
	"sort"
	"strings"
)

// ValidationError carries per-field messages for a record that failed its
// pre-persistence checks. It maps to HTTP 400 at the interface layer.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+v.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
