package ports

// Source supplies raw variable values.
// Lookup must be synchronous and must not modify the backing store.
type Source interface {
	// Lookup returns the raw value of key and whether it was present.
	// A present but empty value returns ("", true).
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}
