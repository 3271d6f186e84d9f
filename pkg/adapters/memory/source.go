package memory

import (
	"maps"
	"strings"
)

// Source implements ports.Source over a fixed map.
// The map is copied on construction, so later changes by the caller are not
// observed. Safe for concurrent use.
type Source struct {
	data map[string]string
}

// NewSource creates a new in-memory source holding a copy of values.
func NewSource(values map[string]string) *Source {
	data := make(map[string]string, len(values))
	maps.Copy(data, values)
	return &Source{data: data}
}

// NewSourceFromPairs builds a source from KEY=VALUE strings, the format of
// os.Environ. Entries without '=' are ignored.
func NewSourceFromPairs(pairs []string) *Source {
	data := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if key, value, ok := strings.Cut(pair, "="); ok {
			data[key] = value
		}
	}
	return &Source{data: data}
}

// Lookup returns the stored value for key.
func (s *Source) Lookup(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Len returns the number of stored entries.
func (s *Source) Len() int {
	return len(s.data)
}
