package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// RunSourceContract runs a suite of tests to verify that a Source implementation
// adheres to the defined interface contract. The source must have been
// populated with exactly the entries of fixture.
func RunSourceContract(t *testing.T, src Source, fixture map[string]string) {
	t.Helper()

	t.Run("Lookup Present", func(t *testing.T) {
		for key, want := range fixture {
			got, ok := src.Lookup(key)
			assert.True(t, ok, "key %s should be present", key)
			assert.Equal(t, want, got, "value mismatch for %s", key)
		}
	})

	t.Run("Lookup Absent", func(t *testing.T) {
		got, ok := src.Lookup("SAFEENV_CONTRACT_ABSENT_KEY")
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("Lookup Is Repeatable", func(t *testing.T) {
		for key := range fixture {
			first, ok1 := src.Lookup(key)
			second, ok2 := src.Lookup(key)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, first, second)
		}
	})
}
