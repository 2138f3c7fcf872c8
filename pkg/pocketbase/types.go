package pocketbase

import "time"

// Record is one row of a collection, fields untyped as the backend
// returns them. Typed access goes through the getters; mapping into
// domain structs happens in the repository layer.
type Record map[string]any

// GetString returns the named field as a string, or "" when absent or
// of another type.
func (r Record) GetString(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the named field as a bool.
func (r Record) GetBool(key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

// GetFloat returns the named field as a float64 (JSON numbers decode
// to float64).
func (r Record) GetFloat(key string) float64 {
	if v, ok := r[key].(float64); ok {
		return v
	}
	return 0
}

// GetStringSlice returns the named field as a []string.
func (r Record) GetStringSlice(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Datetime layouts the backend emits. The space-separated form is the
// collection default; RFC3339 appears on imported records.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05.999Z",
	time.RFC3339,
	"2006-01-02",
}

// GetTime parses the named field as a backend datetime. Returns the
// zero time when the field is absent, empty, or unparseable.
func (r Record) GetTime(key string) time.Time {
	s := r.GetString(key)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatTime renders t in the collection datetime format.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.000Z")
}

// ListOptions shape a records list query.
type ListOptions struct {
	Filter  string
	Sort    string
	Expand  string
	PerPage int // page size per round trip; GetFullList walks all pages
}

// GetOptions shape a single-record fetch.
type GetOptions struct {
	Expand string
}

type listResponse struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Items      []Record `json:"items"`
}
