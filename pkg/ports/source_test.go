package ports_test

import (
	"testing"

	"github.com/nicocarlier/safe-env-lite/pkg/ports"
)

func TestSourceFunc_Contract(t *testing.T) {
	fixture := map[string]string{
		"PORT":  "8080",
		"EMPTY": "",
	}
	src := ports.SourceFunc(func(key string) (string, bool) {
		v, ok := fixture[key]
		return v, ok
	})

	ports.RunSourceContract(t, src, fixture)
}
